package dto

import "time"

type CreateCommentRequest struct {
	PostID   uint64  `json:"post_id" binding:"required"`
	Comment  string  `json:"comment" binding:"required,max=2000"`
	ParentID *uint64 `json:"parent_id" binding:"omitempty"`
}

type UpdateCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	PostID    uint64    `json:"post_id"`
	Comment   string    `json:"comment"`
	ParentID  *uint64   `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *UserDTO `json:"user,omitempty"`
}

type CommentListResponse struct {
	Comments   []CommentDTO `json:"comments"`
	Pagination Pagination   `json:"pagination"`
}

// DeleteCommentResponse 返回本次删除覆盖的评论数（含全部后代）
type DeleteCommentResponse struct {
	Deleted int64 `json:"deleted"`
}
