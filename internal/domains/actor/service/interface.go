package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/actor/model"
	"movie-catalog-backend/pkg/database"
)

type ServiceInterface interface {
	ListActors(ctx context.Context) ([]*model.ActorResponse, error)
	GetActor(ctx context.Context, id uuid.UUID) (*model.ActorResponse, error)
	CreateActor(ctx context.Context, req model.CreateActorRequest) (*model.ActorResponse, error)
	UpdateActor(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ActorResponse, error)
	DeleteActor(ctx context.Context, id uuid.UUID) error
}

type CastRelations interface {
	DeleteByActor(ctx context.Context, actorID uuid.UUID) (int64, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn database.TxFunc) error
}
