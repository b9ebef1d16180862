package model

import "time"

// User 用户表
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Username  string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:enum('user','moderator','admin');not null;default:'user'" json:"role"`
	Avatar    string    `gorm:"type:varchar(512)" json:"avatar"`
	Mobile    string    `gorm:"type:varchar(32)" json:"mobile"`
	Gender    string    `gorm:"type:varchar(16)" json:"gender"`
	Status    string    `gorm:"type:enum('active','inactive');not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
