package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/domains/review/model"
)

var reviewColumns = []string{"id", "movie_id", "reviewer_name", "score", "comment", "recommended", "created_at", "deleted_at"}

func reviewRow(rows *pgxmock.Rows, id, movieID uuid.UUID, score int) *pgxmock.Rows {
	comment := "Great pacing"
	var deleted *time.Time
	return rows.AddRow(id, movieID, "Ann", score, &comment, true, time.Now(), deleted)
}

func newRepo(t *testing.T) (ReviewRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock), mock
}

func TestListActive(t *testing.T) {
	movieID := uuid.New()

	t.Run("all", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`FROM reviews WHERE deleted_at IS NULL ORDER BY created_at DESC`).
			WillReturnRows(pgxmock.NewRows(reviewColumns))

		got, err := repo.ListActive(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by movie", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`FROM reviews WHERE deleted_at IS NULL AND movie_id = \$1 ORDER BY`).
			WithArgs(movieID).
			WillReturnRows(reviewRow(pgxmock.NewRows(reviewColumns), uuid.New(), movieID, 9))

		got, err := repo.ListActive(context.Background(), &movieID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 9, got[0].Score)
		assert.Equal(t, "Great pacing", *got[0].Comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByID(t *testing.T) {
	id, movieID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM reviews WHERE id = \$1 AND deleted_at IS NULL`).
			WithArgs(id).
			WillReturnRows(reviewRow(pgxmock.NewRows(reviewColumns), id, movieID, 6))

		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, movieID, got.MovieID)
		assert.Equal(t, 6, got.Score)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("soft-deleted or missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`FROM reviews WHERE id = \$1 AND deleted_at IS NULL`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`FROM reviews WHERE id = \$1 AND deleted_at IS NULL`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(reviewColumns))

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrReviewNotFound)

		_, err = repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrReviewNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`FROM reviews WHERE id`).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "57P01"})

		_, err := repo.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrReviewNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreate_ForeignKeyViolation(t *testing.T) {
	repo, mock := newRepo(t)

	review := &model.Review{ID: uuid.New(), MovieID: uuid.New(), ReviewerName: "Ann", Score: 7}
	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(review.ID, review.MovieID, "Ann", 7, review.Comment, false).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), review)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	id, movieID := uuid.New(), uuid.New()
	mock.ExpectQuery(`UPDATE reviews SET "score" = \$1, "recommended" = \$2 WHERE "id" = \$3 AND deleted_at IS NULL RETURNING`).
		WithArgs(4, false, id).
		WillReturnRows(reviewRow(pgxmock.NewRows(reviewColumns), id, movieID, 4))

	got, err := repo.Update(context.Background(), id, map[string]any{
		"recommended": false,
		"score":       float64(4),
		"movie_id":    uuid.New().String(),
	})
	require.NoError(t, err)
	assert.Equal(t, movieID, got.MovieID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDelete(t *testing.T) {
	repo, mock := newRepo(t)

	id, movieID := uuid.New(), uuid.New()
	mock.ExpectQuery(`UPDATE reviews SET deleted_at = NOW\(\) WHERE id = \$1 AND deleted_at IS NULL RETURNING movie_id`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"movie_id"}).AddRow(movieID))
	mock.ExpectQuery(`UPDATE reviews SET deleted_at`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.SoftDelete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, movieID, got)

	_, err = repo.SoftDelete(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
