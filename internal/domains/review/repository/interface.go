package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/review/model"
)

// ReviewRepository is the reviews table. Reads skip soft-deleted rows.
type ReviewRepository interface {
	// ListActive returns active reviews, newest first, optionally for one movie.
	ListActive(ctx context.Context, movieID *uuid.UUID) ([]model.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Review, error)

	// SoftDelete marks the review deleted and returns the movie it belonged to.
	SoftDelete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
