package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"movie-catalog-backend/pkg/database/patch"
)

// ===== REQUEST DTOs =====

type CreateMovieRequest struct {
	Title       string  `json:"title"`
	Genre       *string `json:"genre"`
	DurationMin *int    `json:"duration_min"`
	ReleaseDate *string `json:"release_date"`
	InTheaters  *bool   `json:"in_theaters"`
}

func (r CreateMovieRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Genre, validation.Length(0, 100)),
		validation.Field(&r.DurationMin, patch.Positive),
		validation.Field(&r.ReleaseDate, validation.Date(patch.DateLayout).Error("release_date must be a valid date (YYYY-MM-DD)")),
	)
}

// ToMovie assumes Validate passed.
func (r CreateMovieRequest) ToMovie() *Movie {
	m := &Movie{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(r.Title),
		Genre:       r.Genre,
		DurationMin: r.DurationMin,
	}
	if r.InTheaters != nil {
		m.InTheaters = *r.InTheaters
	}
	if r.ReleaseDate != nil {
		if d, err := time.Parse(patch.DateLayout, *r.ReleaseDate); err == nil {
			m.ReleaseDate = &d
		}
	}
	return m
}

// ===== RESPONSE DTOs =====

type MovieResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Genre         *string          `json:"genre"`
	DurationMin   *int             `json:"duration_min"`
	ReleaseDate   *string          `json:"release_date"`
	InTheaters    bool             `json:"in_theaters"`
	AverageRating *decimal.Decimal `json:"average_rating"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
