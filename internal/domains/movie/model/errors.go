package model

import "movie-catalog-backend/internal/shared/apperror"

// Error codes
const (
	ErrCodeMovieNotFound = "MOV001"
	ErrCodeInvalidID     = "MOV002"
)

var (
	ErrMovieNotFound = apperror.NotFound(ErrCodeMovieNotFound, "movie not found")
	ErrInvalidID     = apperror.BadRequest(ErrCodeInvalidID, "invalid movie id")
)
