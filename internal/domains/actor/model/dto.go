package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"movie-catalog-backend/pkg/database/patch"
)

type CreateActorRequest struct {
	Name        string  `json:"name"`
	BirthDate   *string `json:"birth_date"`
	Biography   *string `json:"biography"`
	Nationality *string `json:"nationality"`
}

func (r CreateActorRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.BirthDate, validation.Date(patch.DateLayout).Error("birth_date must be a valid date (YYYY-MM-DD)")),
		validation.Field(&r.Nationality, validation.Length(0, 100)),
	)
}

func (r CreateActorRequest) ToActor() *Actor {
	a := &Actor{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(r.Name),
		Biography:   r.Biography,
		Nationality: r.Nationality,
	}
	if r.BirthDate != nil {
		if d, err := time.Parse(patch.DateLayout, *r.BirthDate); err == nil {
			a.BirthDate = &d
		}
	}
	return a
}

type ActorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BirthDate   *string   `json:"birth_date"`
	Biography   *string   `json:"biography"`
	Nationality *string   `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}
