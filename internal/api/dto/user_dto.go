package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Username string `json:"username" binding:"required,alphanum,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Mobile   string `json:"mobile" binding:"omitempty,max=32"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type ResetPasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	Name   string `json:"name" binding:"omitempty,max=255"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
	Mobile string `json:"mobile" binding:"omitempty,max=32"`
	Gender string `json:"gender" binding:"omitempty,oneof=male female other"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Gender    string    `json:"gender"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users      []UserDTO  `json:"users"`
	Pagination Pagination `json:"pagination"`
}
