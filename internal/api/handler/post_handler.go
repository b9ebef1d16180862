package handler

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/pkg/response"
	"Photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// CreatePost 发帖，media 为 multipart 文件字段
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	file, err := c.FormFile("media")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	caption := c.PostForm("caption")
	visibility := c.PostForm("visibility")

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, caption, visibility, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPost 获取帖子详情
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 更新帖子文案或可见性
func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	role := c.GetString("role")

	var req dto.UpdatePostRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.UpdatePost(c.Request.Context(), userID, role, postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeletePost 删除帖子及其媒体文件
func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	role := c.GetString("role")

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, role, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListPosts 公开帖子流，支持按文案搜索
func (s *PostHandler) ListPosts(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.postSvc.ListPosts(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListUserPosts 指定用户的帖子列表
func (s *PostHandler) ListUserPosts(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var query dto.PageQuery
	if err = c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.postSvc.ListByUser(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
