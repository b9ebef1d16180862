package dto

// Response 统一响应封装
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Pagination 分页元信息
type Pagination struct {
	Total        int64 `json:"total"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"total_pages"`
	HasMore      bool  `json:"has_more"`
	NextPage     *int  `json:"next_page"`
	PreviousPage *int  `json:"previous_page"`
}

// PageQuery 列表接口通用查询参数
type PageQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Search string `form:"search" binding:"omitempty,max=100"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=id created_at updated_at"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}
