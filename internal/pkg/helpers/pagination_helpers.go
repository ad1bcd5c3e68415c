package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based at the API boundary
)

// ParseListParams extracts search, sort and pagination parameters from the
// request. Invalid or out-of-range values degrade to defaults; page_size is
// always clamped to [1, MaxPageSize] over HTTP.
func ParseListParams(c *gin.Context) dto.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return dto.ListParams{
		SearchTerm: c.Query("q"),
		SearchBy:   c.Query("search_by"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.DefaultQuery("sort_order", "ASC"),
		Page:       page,
		PageSize:   size,
	}
}

// NewPaginationMeta creates the pagination metadata attached to list
// responses. The total count is independent of page and size.
func NewPaginationMeta(totalItems int64, page, size int) dto.PaginationMeta {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		totalPages = 1
	}

	return dto.PaginationMeta{
		Page:       page,
		PerPage:    size,
		Total:      totalItems,
		TotalPages: totalPages,
	}
}
