package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"movie-catalog-backend/pkg/database/patch"
)

type CreateRelationRequest struct {
	MovieID     string  `json:"movie_id"`
	ActorID     string  `json:"actor_id"`
	Role        *string `json:"role"`
	CreditOrder *int    `json:"credit_order"`
}

func (r CreateRelationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID,
			validation.Required.Error("movie_id is required"),
			is.UUID.Error("movie_id must be a valid UUID"),
		),
		validation.Field(&r.ActorID,
			validation.Required.Error("actor_id is required"),
			is.UUID.Error("actor_id must be a valid UUID"),
		),
		validation.Field(&r.Role, validation.Length(0, 255)),
		validation.Field(&r.CreditOrder, patch.Positive),
	)
}

// ToRelation assumes Validate passed. A blank role is stored as NULL.
func (r CreateRelationRequest) ToRelation() *Relation {
	rel := &Relation{
		MovieID:     uuid.MustParse(r.MovieID),
		ActorID:     uuid.MustParse(r.ActorID),
		CreditOrder: r.CreditOrder,
	}
	if r.Role != nil {
		if role := strings.TrimSpace(*r.Role); role != "" {
			rel.Role = &role
		}
	}
	return rel
}

type RelationResponse struct {
	MovieID     uuid.UUID `json:"movie_id"`
	ActorID     uuid.UUID `json:"actor_id"`
	Role        *string   `json:"role"`
	CreditOrder *int      `json:"credit_order"`
}

type CastMemberResponse struct {
	ActorID     uuid.UUID `json:"actor_id"`
	Name        string    `json:"name"`
	BirthDate   *string   `json:"birth_date"`
	Biography   *string   `json:"biography"`
	Nationality *string   `json:"nationality"`
	Role        *string   `json:"role"`
	CreditOrder *int      `json:"credit_order"`
}

type CreditResponse struct {
	MovieID     uuid.UUID `json:"movie_id"`
	Title       string    `json:"title"`
	ReleaseDate *string   `json:"release_date"`
	Genre       *string   `json:"genre"`
	Role        *string   `json:"role"`
	CreditOrder *int      `json:"credit_order"`
}
