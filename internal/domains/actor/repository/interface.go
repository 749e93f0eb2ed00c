package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/actor/model"
)

// Repository is the actors table. Reads skip soft-deleted rows.
type Repository interface {
	ListActive(ctx context.Context) ([]model.Actor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error)

	// LockActive row-locks the actor until the surrounding transaction ends.
	LockActive(ctx context.Context, id uuid.UUID) error

	Create(ctx context.Context, actor *model.Actor) (*model.Actor, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Actor, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
