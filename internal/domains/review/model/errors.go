package model

import "movie-catalog-backend/internal/shared/apperror"

// Error codes
const (
	ErrCodeReviewNotFound = "REV001"
	ErrCodeInvalidID      = "REV002"
	ErrCodeMovieNotFound  = "REV003"
)

var (
	ErrReviewNotFound = apperror.NotFound(ErrCodeReviewNotFound, "review not found")
	ErrInvalidID      = apperror.BadRequest(ErrCodeInvalidID, "invalid review id")
	ErrMovieNotFound  = apperror.NotFound(ErrCodeMovieNotFound, "referenced movie not found")
)
