package helpers

import (
	"math"

	"github.com/rcardoso/schedula/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on
// a 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, size int) {
	if limit <= 0 || limit > MaxPageSize {
		size = DefaultPageSize
	} else {
		size = limit
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * size)
	return offset, size
}

// NewPaginationInfo creates a standard PaginationInfo DTO from a total row
// count and the requested 1-based page.
func NewPaginationInfo(totalItems int64, page, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	} else if page == 1 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		Total:      totalItems,
		TotalPages: totalPages,
		Page:       currentPage,
		Limit:      limit,
	}
}
