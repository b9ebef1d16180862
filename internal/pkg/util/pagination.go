package util

import "Photoshare/internal/api/dto"

// NewPagination 根据总数和页参数计算分页元信息
func NewPagination(total int64, page, limit int) dto.Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	p := dto.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	if p.HasMore {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 && page <= totalPages+1 {
		prev := page - 1
		p.PreviousPage = &prev
	}
	return p
}
