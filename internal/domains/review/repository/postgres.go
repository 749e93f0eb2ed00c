package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/review/model"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) ReviewRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromCtx(ctx, r.db)
}

// ===== READ =====

func (r *postgresRepository) ListActive(ctx context.Context, movieID *uuid.UUID) ([]model.Review, error) {
	query := `SELECT ` + model.Columns + ` FROM reviews WHERE deleted_at IS NULL`
	args := []any{}
	if movieID != nil {
		query += ` AND movie_id = $1`
		args = append(args, *movieID)
	}
	query += ` ORDER BY created_at DESC`

	reviews := []model.Review{}
	if err := pgxscan.Select(ctx, r.q(ctx), &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + model.Columns + ` FROM reviews WHERE id = $1 AND deleted_at IS NULL`

	var review model.Review
	if err := pgxscan.Get(ctx, r.q(ctx), &review, query, id); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// ===== WRITE =====

func (r *postgresRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	query := `
		INSERT INTO reviews (id, movie_id, reviewer_name, score, comment, recommended)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + model.Columns

	var created model.Review
	err := pgxscan.Get(ctx, r.q(ctx), &created, query,
		review.ID,
		review.MovieID,
		review.ReviewerName,
		review.Score,
		review.Comment,
		review.Recommended,
	)
	if err != nil {
		if utils.IsForeignKeyViolation(err) {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Review, error) {
	stmt, err := model.UpdateFields.Build(fields, id)
	if err != nil {
		return nil, err
	}

	var updated model.Review
	if err := pgxscan.Get(ctx, r.q(ctx), &updated, stmt.SQL, stmt.Args...); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := `UPDATE reviews SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING movie_id`

	var movieID uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, query, id).Scan(&movieID); err != nil {
		if utils.IsNoRows(err) {
			return uuid.Nil, model.ErrReviewNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to delete review: %w", err)
	}
	return movieID, nil
}
