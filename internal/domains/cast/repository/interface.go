package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/cast/model"
)

// Repository is the movie_actors table. Rows are hard-deleted.
type Repository interface {
	ListAll(ctx context.Context) ([]model.Relation, error)

	// ListByMovie and ListByActor skip soft-deleted counterparts and order
	// by credit_order, uncredited last.
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]model.CastMember, error)
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]model.Credit, error)

	// Create maps a duplicate pair to model.ErrDuplicate and a dangling
	// reference to model.ErrReferenceNotFound.
	Create(ctx context.Context, relation *model.Relation) (*model.Relation, error)
	Update(ctx context.Context, movieID, actorID uuid.UUID, fields map[string]any) (*model.Relation, error)
	Delete(ctx context.Context, movieID, actorID uuid.UUID) error

	// DeleteByMovie and DeleteByActor return the number of rows removed.
	DeleteByMovie(ctx context.Context, movieID uuid.UUID) (int64, error)
	DeleteByActor(ctx context.Context, actorID uuid.UUID) (int64, error)
}
