package handler

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/pkg/response"
	"Photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	followSvc service.FollowService
}

func NewUserFollowHandler(followSvc service.FollowService) *UserFollowHandler {
	return &UserFollowHandler{
		followSvc: followSvc,
	}
}

// Follow 关注用户
func (s *UserFollowHandler) Follow(c *gin.Context) {
	followeeID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || followeeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	followerID := c.GetUint64("user_id")

	if err = s.followSvc.Follow(c.Request.Context(), followerID, followeeID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow 取消关注
func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	followeeID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || followeeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	followerID := c.GetUint64("user_id")

	if err = s.followSvc.Unfollow(c.Request.Context(), followerID, followeeID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollowers 粉丝列表
func (s *UserFollowHandler) ListFollowers(c *gin.Context) {
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

	result, err := s.followSvc.ListFollowers(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListFollowing 关注列表
func (s *UserFollowHandler) ListFollowing(c *gin.Context) {
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

	result, err := s.followSvc.ListFollowing(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
