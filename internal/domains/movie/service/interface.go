package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/pkg/database"
)

// ServiceInterface is what the movie handler depends on.
// Every returned error is an *apperror.Error.
type ServiceInterface interface {
	ListMovies(ctx context.Context) ([]*model.MovieResponse, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*model.MovieResponse, error)
	CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.MovieResponse, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.MovieResponse, error)

	// DeleteMovie soft-deletes the movie and hard-deletes its cast relations
	// in one transaction.
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

// CastRelations is the slice of the cast repository the movie cascade needs.
type CastRelations interface {
	DeleteByMovie(ctx context.Context, movieID uuid.UUID) (int64, error)
}

// TxRunner runs fn atomically (see database.TxManager).
type TxRunner interface {
	RunInTx(ctx context.Context, fn database.TxFunc) error
}
