package model

import "movie-catalog-backend/internal/shared/apperror"

const (
	ErrCodeRelationNotFound  = "CAST001"
	ErrCodeDuplicate         = "CAST002"
	ErrCodeReferenceNotFound = "CAST003"
	ErrCodeInvalidID         = "CAST004"
)

var (
	ErrRelationNotFound  = apperror.NotFound(ErrCodeRelationNotFound, "cast relation not found")
	ErrDuplicate         = apperror.Conflict(ErrCodeDuplicate, "actor is already credited on this movie")
	ErrReferenceNotFound = apperror.NotFound(ErrCodeReferenceNotFound, "referenced movie or actor not found")
	ErrInvalidID         = apperror.BadRequest(ErrCodeInvalidID, "invalid movie or actor id")
)
