package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/domains/cast/model"
	"movie-catalog-backend/internal/domains/cast/repository"
	"movie-catalog-backend/internal/shared/validator"
)

type castService struct {
	repo repository.Repository
}

func NewCastService(repo repository.Repository) ServiceInterface {
	return &castService{repo: repo}
}

func (s *castService) ListRelations(ctx context.Context) ([]*model.RelationResponse, error) {
	relations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return model.ToResponses(relations), nil
}

func (s *castService) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*model.CastMemberResponse, error) {
	if movieID == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	members, err := s.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	out := make([]*model.CastMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, members[i].ToResponse())
	}
	return out, nil
}

func (s *castService) ListByActor(ctx context.Context, actorID uuid.UUID) ([]*model.CreditResponse, error) {
	if actorID == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	credits, err := s.repo.ListByActor(ctx, actorID)
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	out := make([]*model.CreditResponse, 0, len(credits))
	for i := range credits {
		out = append(out, credits[i].ToResponse())
	}
	return out, nil
}

func (s *castService) CreateRelation(ctx context.Context, req model.CreateRelationRequest) (*model.RelationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, validator.Reject(err)
	}

	created, err := s.repo.Create(ctx, req.ToRelation())
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	log.Info().
		Str("movie_id", created.MovieID.String()).
		Str("actor_id", created.ActorID.String()).
		Msg("[CastService] Relation created")

	return created.ToResponse(), nil
}

func (s *castService) UpdateRelation(ctx context.Context, movieID, actorID uuid.UUID, fields map[string]any) (*model.RelationResponse, error) {
	if movieID == uuid.Nil || actorID == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	updated, err := s.repo.Update(ctx, movieID, actorID, fields)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return updated.ToResponse(), nil
}

func (s *castService) DeleteRelation(ctx context.Context, movieID, actorID uuid.UUID) error {
	if movieID == uuid.Nil || actorID == uuid.Nil {
		return model.ErrInvalidID
	}

	if err := s.repo.Delete(ctx, movieID, actorID); err != nil {
		return validator.AsAppError(err)
	}

	log.Info().
		Str("movie_id", movieID.String()).
		Str("actor_id", actorID.String()).
		Msg("[CastService] Relation deleted")

	return nil
}
