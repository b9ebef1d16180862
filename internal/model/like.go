package model

import "time"

// Like 点赞表，post_id 与 comment_id 二选一，
// (user_id, post_id) 和 (user_id, comment_id) 各有唯一约束
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uk_user_post;uniqueIndex:uk_user_comment" json:"user_id"`
	PostID    *uint64   `gorm:"uniqueIndex:uk_user_post" json:"post_id"`
	CommentID *uint64   `gorm:"uniqueIndex:uk_user_comment" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}
