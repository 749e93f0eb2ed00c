package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/cast/model"
)

type ServiceInterface interface {
	ListRelations(ctx context.Context) ([]*model.RelationResponse, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*model.CastMemberResponse, error)
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]*model.CreditResponse, error)
	CreateRelation(ctx context.Context, req model.CreateRelationRequest) (*model.RelationResponse, error)
	UpdateRelation(ctx context.Context, movieID, actorID uuid.UUID, fields map[string]any) (*model.RelationResponse, error)
	DeleteRelation(ctx context.Context, movieID, actorID uuid.UUID) error
}
