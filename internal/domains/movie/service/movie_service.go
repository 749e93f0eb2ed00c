package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/internal/domains/movie/repository"
	"movie-catalog-backend/internal/shared/validator"
)

type movieService struct {
	repo repository.Repository
	cast CastRelations
	tx   TxRunner
}

func NewMovieService(repo repository.Repository, cast CastRelations, tx TxRunner) ServiceInterface {
	return &movieService{repo: repo, cast: cast, tx: tx}
}

func (s *movieService) ListMovies(ctx context.Context) ([]*model.MovieResponse, error) {
	movies, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return model.ToResponses(movies), nil
}

func (s *movieService) GetMovie(ctx context.Context, id uuid.UUID) (*model.MovieResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return movie.ToResponse(), nil
}

func (s *movieService) CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.MovieResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, validator.Reject(err)
	}

	movie, err := s.repo.Create(ctx, req.ToMovie())
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	log.Info().
		Str("movie_id", movie.ID.String()).
		Str("title", movie.Title).
		Msg("[MovieService] Movie created")

	return movie.ToResponse(), nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.MovieResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	movie, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	log.Info().Str("movie_id", id.String()).Msg("[MovieService] Movie updated")
	return movie.ToResponse(), nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrInvalidID
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 1: lock the active movie, NotFound aborts before any write
		if err := s.repo.LockActive(ctx, id); err != nil {
			return err
		}

		// Step 2: hard-delete its cast relations
		n, err := s.cast.DeleteByMovie(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		// Step 3: mark the movie deleted
		return s.repo.SoftDelete(ctx, id)
	})
	if err != nil {
		return validator.AsAppError(err)
	}

	log.Info().
		Str("movie_id", id.String()).
		Int64("cast_relations_removed", removed).
		Msg("[MovieService] Movie deleted")

	return nil
}
