package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie/model"
)

// Repository is the movies table. Every read filters soft-deleted rows.
// Methods join the caller's transaction when ctx carries one.
type Repository interface {
	// ListActive returns every movie with deleted_at unset.
	ListActive(ctx context.Context) ([]model.Movie, error)

	// GetByID returns model.ErrMovieNotFound for absent or deleted movies.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)

	// ExistsActive reports whether a non-deleted movie has this id.
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)

	// LockActive takes a row lock on the active movie for the rest of the
	// transaction, or returns model.ErrMovieNotFound.
	LockActive(ctx context.Context, id uuid.UUID) error

	Create(ctx context.Context, movie *model.Movie) (*model.Movie, error)

	// Update applies the recognized keys of fields (see model.UpdateFields).
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Movie, error)

	// SoftDelete sets deleted_at on the active movie.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// RefreshAverageRating recomputes average_rating from active reviews.
	RefreshAverageRating(ctx context.Context, id uuid.UUID) error
}
