package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/constants"
)

// PaginationMeta is the metadata block of a paginated response. It is derived
// from the page window and total count on every list query, never stored.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// PaginatedResponse is the {items, meta} envelope returned by list endpoints.
type PaginatedResponse[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

// ValidatePagination reads page and page_size from the query string, applying
// defaults of 1 and 10. Non-integer or out-of-range values are rejected with
// a BadRequest error rather than clamped.
func ValidatePagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil {
		return 0, 0, apperrors.BadRequest("Invalid pagination parameters. Value of page and page_size must be integers.")
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil {
		return 0, 0, apperrors.BadRequest("Invalid pagination parameters. Value of page and page_size must be integers.")
	}

	if page < 1 {
		return 0, 0, apperrors.BadRequest("Value of page must be greater than 0")
	}
	if pageSize < constants.MinPageSize || pageSize > constants.MaxPageSize {
		return 0, 0, apperrors.BadRequest("Value of page_size must be between 1 and 100")
	}

	return page, pageSize, nil
}

// NewPaginatedResponse wraps one page of items with its metadata.
//
// has_prev is computed from page alone (page > 1); a page requested beyond
// the last one still reports has_prev=true with zero items. Kept for
// compatibility with existing clients; pinned in the package tests.
func NewPaginatedResponse[T any](items []T, total int64, page, pageSize int) PaginatedResponse[T] {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return PaginatedResponse[T]{
		Items: items,
		Meta: PaginationMeta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}
