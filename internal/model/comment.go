package model

import "time"

// Comment 评论表，parent_id 自引用构成评论树，级联删除子树
type Comment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	Comment   string    `gorm:"type:varchar(2000);not null" json:"comment"`
	ParentID  *uint64   `gorm:"index" json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	// 删除评论时数据库级联清理其回复和点赞
	Replies []Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Likes   []Like    `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
