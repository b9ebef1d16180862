package dto

import "time"

type UpdatePostRequest struct {
	Caption    string `json:"caption" binding:"omitempty,max=2000"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=public private friends custom"`
}

type PostDTO struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"user_id"`
	Caption          string    `json:"caption"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	MediaType        string    `json:"media_type"`
	MimeType         string    `json:"mime_type"`
	Size             int64     `json:"size"`
	LikesCount       int       `json:"likes_count"`
	CommentsCount    int       `json:"comments_count"`
	Visibility       string    `json:"visibility"`
	MediaURL         string    `json:"media_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User *UserDTO `json:"user,omitempty"`
}

type PostListResponse struct {
	Posts      []PostDTO  `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
