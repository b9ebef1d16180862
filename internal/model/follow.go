package model

import "time"

// Follow 关注关系表，(follower_id, followee_id) 唯一
type Follow struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"not null;uniqueIndex:uk_follower_followee" json:"follower_id"`
	FolloweeID uint64    `gorm:"not null;uniqueIndex:uk_follower_followee;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee *User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
