package model

import "time"

// Post 帖子表，likes_count 和 comments_count 为冗余计数
type Post struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint64    `gorm:"not null;index" json:"user_id"`
	Caption          string    `gorm:"type:varchar(2000)" json:"caption"`
	Filename         string    `gorm:"type:varchar(512);not null" json:"filename"`
	OriginalFilename string    `gorm:"type:varchar(512);not null" json:"original_filename"`
	MediaType        string    `gorm:"type:enum('image','video','gif');not null" json:"media_type"`
	MimeType         string    `gorm:"type:varchar(128);not null" json:"mime_type"`
	Size             int64     `gorm:"not null" json:"size"`
	LikesCount       int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount    int       `gorm:"not null;default:0" json:"comments_count"`
	Visibility       string    `gorm:"type:enum('public','private','friends','custom');not null;default:'public'" json:"visibility"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	// 删除帖子时数据库级联清理其评论和点赞
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
