package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/actor/model"
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

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Actor, error) {
	query := `SELECT ` + model.Columns + ` FROM actors WHERE deleted_at IS NULL`

	actors := []model.Actor{}
	if err := pgxscan.Select(ctx, r.q(ctx), &actors, query); err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return actors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error) {
	query := `SELECT ` + model.Columns + ` FROM actors WHERE id = $1 AND deleted_at IS NULL`

	var actor model.Actor
	if err := pgxscan.Get(ctx, r.q(ctx), &actor, query, id); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	return &actor, nil
}

func (r *postgresRepository) LockActive(ctx context.Context, id uuid.UUID) error {
	query := `SELECT id FROM actors WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`

	var locked uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if utils.IsNoRows(err) {
			return model.ErrActorNotFound
		}
		return fmt.Errorf("failed to lock actor: %w", err)
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	query := `
		INSERT INTO actors (id, name, birth_date, biography, nationality)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + model.Columns

	var created model.Actor
	err := pgxscan.Get(ctx, r.q(ctx), &created, query,
		actor.ID,
		actor.Name,
		actor.BirthDate,
		actor.Biography,
		actor.Nationality,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Actor, error) {
	stmt, err := model.UpdateFields.Build(fields, id)
	if err != nil {
		return nil, err
	}

	var updated model.Actor
	if err := pgxscan.Get(ctx, r.q(ctx), &updated, stmt.SQL, stmt.Args...); err != nil {
		if utils.IsNoRows(err) {
			return nil, model.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to update actor: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE actors SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.q(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrActorNotFound
	}
	return nil
}
