package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/domains/actor/model"
	"movie-catalog-backend/internal/domains/actor/repository"
	"movie-catalog-backend/internal/shared/validator"
)

type actorService struct {
	repo repository.Repository
	cast CastRelations
	tx   TxRunner
}

func NewActorService(repo repository.Repository, cast CastRelations, tx TxRunner) ServiceInterface {
	return &actorService{repo: repo, cast: cast, tx: tx}
}

func (s *actorService) ListActors(ctx context.Context) ([]*model.ActorResponse, error) {
	actors, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return model.ToResponses(actors), nil
}

func (s *actorService) GetActor(ctx context.Context, id uuid.UUID) (*model.ActorResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	actor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return actor.ToResponse(), nil
}

func (s *actorService) CreateActor(ctx context.Context, req model.CreateActorRequest) (*model.ActorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, validator.Reject(err)
	}

	actor, err := s.repo.Create(ctx, req.ToActor())
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	log.Info().
		Str("actor_id", actor.ID.String()).
		Str("name", actor.Name).
		Msg("[ActorService] Actor created")

	return actor.ToResponse(), nil
}

func (s *actorService) UpdateActor(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ActorResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	actor, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return actor.ToResponse(), nil
}

// DeleteActor soft-deletes the actor and removes every cast credit it had.
func (s *actorService) DeleteActor(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrInvalidID
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.LockActive(ctx, id); err != nil {
			return err
		}

		n, err := s.cast.DeleteByActor(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		return s.repo.SoftDelete(ctx, id)
	})
	if err != nil {
		return validator.AsAppError(err)
	}

	log.Info().
		Str("actor_id", id.String()).
		Int64("cast_relations_removed", removed).
		Msg("[ActorService] Actor deleted")

	return nil
}
