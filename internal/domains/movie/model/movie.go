package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"movie-catalog-backend/pkg/database/patch"
)

// Movie maps the movies table.
type Movie struct {
	ID            uuid.UUID           `db:"id"`
	Title         string              `db:"title"`
	Genre         *string             `db:"genre"`
	DurationMin   *int                `db:"duration_min"`
	ReleaseDate   *time.Time          `db:"release_date"`
	InTheaters    bool                `db:"in_theaters"`
	AverageRating decimal.NullDecimal `db:"average_rating"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
	DeletedAt     *time.Time          `db:"deleted_at"`
}

// Columns is the select list matching Movie.
const Columns = "id, title, genre, duration_min, release_date, in_theaters, average_rating, created_at, updated_at, deleted_at"

func (m *Movie) IsDeleted() bool {
	return m.DeletedAt != nil
}

// ToResponse renders dates as YYYY-MM-DD.
func (m *Movie) ToResponse() *MovieResponse {
	resp := &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		DurationMin: m.DurationMin,
		InTheaters:  m.InTheaters,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ReleaseDate != nil {
		d := m.ReleaseDate.Format(patch.DateLayout)
		resp.ReleaseDate = &d
	}
	if m.AverageRating.Valid {
		r := m.AverageRating.Decimal
		resp.AverageRating = &r
	}
	return resp
}

func ToResponses(movies []Movie) []*MovieResponse {
	out := make([]*MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, movies[i].ToResponse())
	}
	return out
}
