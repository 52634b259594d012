package httpresp

import "github.com/gin-gonic/gin"

// Pagination contract: page >= 1, limit in [1,100],
// total_pages = ceil(total / limit).
type ListResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func NoContent(c *gin.Context) {
	c.Status(204)
}

func List[T any](c *gin.Context, data []T, page, limit int, total int64) {
	c.JSON(200, ListResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	})
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ClampPage normalises raw query values into the pagination contract,
// defaulting to page 1 / limit 20.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
