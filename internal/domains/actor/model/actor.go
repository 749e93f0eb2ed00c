package model

import (
	"time"

	"github.com/google/uuid"

	"movie-catalog-backend/pkg/database/patch"
)

// Actor maps the actors table.
type Actor struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	BirthDate   *time.Time `db:"birth_date"`
	Biography   *string    `db:"biography"`
	Nationality *string    `db:"nationality"`
	CreatedAt   time.Time  `db:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

const Columns = "id, name, birth_date, biography, nationality, created_at, deleted_at"

func (a *Actor) ToResponse() *ActorResponse {
	resp := &ActorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Biography:   a.Biography,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt,
	}
	if a.BirthDate != nil {
		d := a.BirthDate.Format(patch.DateLayout)
		resp.BirthDate = &d
	}
	return resp
}

func ToResponses(actors []Actor) []*ActorResponse {
	out := make([]*ActorResponse, 0, len(actors))
	for i := range actors {
		out = append(out, actors[i].ToResponse())
	}
	return out
}
