package model

import "movie-catalog-backend/internal/shared/apperror"

const (
	ErrCodeActorNotFound = "ACT001"
	ErrCodeInvalidID     = "ACT002"
)

var (
	ErrActorNotFound = apperror.NotFound(ErrCodeActorNotFound, "actor not found")
	ErrInvalidID     = apperror.BadRequest(ErrCodeInvalidID, "invalid actor id")
)
