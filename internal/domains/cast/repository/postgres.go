package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/cast/model"
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

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Relation, error) {
	query := `SELECT ` + model.Columns + ` FROM movie_actors ORDER BY movie_id, credit_order ASC NULLS LAST`

	relations := []model.Relation{}
	if err := pgxscan.Select(ctx, r.q(ctx), &relations, query); err != nil {
		return nil, fmt.Errorf("failed to list cast relations: %w", err)
	}
	return relations, nil
}

func (r *postgresRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]model.CastMember, error) {
	query := `
		SELECT a.id, a.name, a.birth_date, a.biography, a.nationality, ma.role, ma.credit_order
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = $1 AND a.deleted_at IS NULL
		ORDER BY ma.credit_order ASC NULLS LAST`

	members := []model.CastMember{}
	if err := pgxscan.Select(ctx, r.q(ctx), &members, query, movieID); err != nil {
		return nil, fmt.Errorf("failed to list movie cast: %w", err)
	}
	return members, nil
}

func (r *postgresRepository) ListByActor(ctx context.Context, actorID uuid.UUID) ([]model.Credit, error) {
	query := `
		SELECT m.id, m.title, m.release_date, m.genre, ma.role, ma.credit_order
		FROM movie_actors ma
		JOIN movies m ON m.id = ma.movie_id
		WHERE ma.actor_id = $1 AND m.deleted_at IS NULL
		ORDER BY ma.credit_order ASC NULLS LAST`

	credits := []model.Credit{}
	if err := pgxscan.Select(ctx, r.q(ctx), &credits, query, actorID); err != nil {
		return nil, fmt.Errorf("failed to list actor credits: %w", err)
	}
	return credits, nil
}

// ===== WRITE =====

func (r *postgresRepository) Create(ctx context.Context, relation *model.Relation) (*model.Relation, error) {
	query := `
		INSERT INTO movie_actors (movie_id, actor_id, role, credit_order)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + model.Columns

	var created model.Relation
	err := pgxscan.Get(ctx, r.q(ctx), &created, query,
		relation.MovieID,
		relation.ActorID,
		relation.Role,
		relation.CreditOrder,
	)
	if err != nil {
		switch {
		case utils.IsUniqueViolation(err):
			return nil, model.ErrDuplicate
		case utils.IsForeignKeyViolation(err):
			return nil, model.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to create cast relation: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, movieID, actorID uuid.UUID, fields map[string]any) (*model.Relation, error) {
	stmt, err := model.UpdateFields.Build(fields, movieID, actorID)
	if err != nil {
		return nil, err
	}

	var updated model.Relation
	if err := pgxscan.Get(ctx, r.q(ctx), &updated, stmt.SQL, stmt.Args...); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrRelationNotFound
		}
		return nil, fmt.Errorf("failed to update cast relation: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, movieID, actorID uuid.UUID) error {
	query := `DELETE FROM movie_actors WHERE movie_id = $1 AND actor_id = $2`

	result, err := r.q(ctx).Exec(ctx, query, movieID, actorID)
	if err != nil {
		return fmt.Errorf("failed to delete cast relation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrRelationNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteByMovie(ctx context.Context, movieID uuid.UUID) (int64, error) {
	result, err := r.q(ctx).Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movieID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete movie cast: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *postgresRepository) DeleteByActor(ctx context.Context, actorID uuid.UUID) (int64, error) {
	result, err := r.q(ctx).Exec(ctx, `DELETE FROM movie_actors WHERE actor_id = $1`, actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete actor credits: %w", err)
	}
	return result.RowsAffected(), nil
}
