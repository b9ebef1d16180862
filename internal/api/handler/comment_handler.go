package handler

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/pkg/response"
	"Photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// CreateComment 发表评论或回复
func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// GetComment 获取单条评论
func (s *CommentHandler) GetComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comment, err := s.commentSvc.GetComment(c.Request.Context(), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// UpdateComment 修改评论内容
func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	role := c.GetString("role")

	var req dto.UpdateCommentRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.commentSvc.UpdateComment(c.Request.Context(), userID, role, commentID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteComment 删除评论及其整棵回复子树
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	role := c.GetString("role")

	deleted, err := s.commentSvc.DeleteComment(c.Request.Context(), userID, role, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.DeleteCommentResponse{Deleted: deleted})
}

// ListComments 帖子的评论列表
func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var query dto.PageQuery
	if err = c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.commentSvc.ListByPost(c.Request.Context(), postID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
