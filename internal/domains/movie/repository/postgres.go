package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromCtx(ctx, r.db)
}

// ===== READ =====

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Movie, error) {
	query := `SELECT ` + model.Columns + ` FROM movies WHERE deleted_at IS NULL`

	movies := []model.Movie{}
	if err := pgxscan.Select(ctx, r.q(ctx), &movies, query); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	query := `SELECT ` + model.Columns + ` FROM movies WHERE id = $1 AND deleted_at IS NULL`

	var movie model.Movie
	if err := pgxscan.Get(ctx, r.q(ctx), &movie, query, id); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &movie, nil
}

func (r *postgresRepository) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check movie: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) LockActive(ctx context.Context, id uuid.UUID) error {
	query := `SELECT id FROM movies WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`

	var locked uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if utils.IsNoRows(err) {
			return model.ErrMovieNotFound
		}
		return fmt.Errorf("failed to lock movie: %w", err)
	}
	return nil
}

// ===== WRITE =====

func (r *postgresRepository) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	query := `
		INSERT INTO movies (id, title, genre, duration_min, release_date, in_theaters)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + model.Columns

	var created model.Movie
	err := pgxscan.Get(ctx, r.q(ctx), &created, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.DurationMin,
		movie.ReleaseDate,
		movie.InTheaters,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Movie, error) {
	stmt, err := model.UpdateFields.Build(fields, id)
	if err != nil {
		return nil, err
	}

	var updated model.Movie
	if err := pgxscan.Get(ctx, r.q(ctx), &updated, stmt.SQL, stmt.Args...); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE movies SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.q(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func (r *postgresRepository) RefreshAverageRating(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE movies
		SET average_rating = (
			SELECT ROUND(AVG(score)::numeric, 2)
			FROM reviews
			WHERE movie_id = $1 AND deleted_at IS NULL
		)
		WHERE id = $1`

	if _, err := r.q(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to refresh average rating: %w", err)
	}
	return nil
}
