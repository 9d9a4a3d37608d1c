package repository

import (
	"quizapp/apperrors"

	"gorm.io/gorm"
)

// Ordering for every listing: most recent first, with id as a tie
// breaker so rows created in the same instant still come back in a
// deterministic order.
const listOrder = "created_at DESC, id DESC"

// PaginatedResult holds one page of rows plus the total match count.
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// ValidatePageArgs rejects page or pageSize outside their domain.
func ValidatePageArgs(page, pageSize int) error {
	if page <= 0 || pageSize <= 0 {
		return apperrors.NewInvalidArgument("page and page size must be greater than 0")
	}
	return nil
}

// TotalPages returns the number of pages needed for total rows.
func TotalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// CheckPageRange fails when the requested page lies beyond the data.
// An empty result set never triggers it: page 1 of nothing is fine.
func CheckPageRange(page, pageSize int, total int64) error {
	if total == 0 {
		return nil
	}
	if totalPages := TotalPages(total, pageSize); page > totalPages {
		return &apperrors.OutOfRangeError{Page: page, TotalPages: totalPages}
	}
	return nil
}

// paginate counts matches with countQuery, validates the page against
// the count, then fetches one ordered page with fetchQuery. Both
// queries must carry the same filters.
func paginate[T any](countQuery, fetchQuery *gorm.DB, page, pageSize int) (*PaginatedResult[T], error) {
	if err := ValidatePageArgs(page, pageSize); err != nil {
		return nil, err
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, apperrors.NewStorage("count rows", err)
	}

	if err := CheckPageRange(page, pageSize, total); err != nil {
		return nil, err
	}

	var items []T
	err := fetchQuery.
		Order(listOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, apperrors.NewStorage("fetch page", err)
	}

	return &PaginatedResult[T]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
