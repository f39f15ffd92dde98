package service

import apperrors "renthub-backend/internal/errors"

const (
	defaultPageLimit = 20
	maxPageLimit     = 1000
)

// normalizePagination applies the default page size and rejects negative values
func normalizePagination(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, apperrors.ErrInvalidPaginationParam
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit, offset, nil
}
