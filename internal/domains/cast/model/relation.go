package model

import (
	"time"

	"github.com/google/uuid"

	"movie-catalog-backend/pkg/database/patch"
)

// Relation maps movie_actors. The (movie_id, actor_id) pair is the key.
type Relation struct {
	MovieID     uuid.UUID `db:"movie_id"`
	ActorID     uuid.UUID `db:"actor_id"`
	Role        *string   `db:"role"`
	CreditOrder *int      `db:"credit_order"`
}

const Columns = "movie_id, actor_id, role, credit_order"

func (r *Relation) ToResponse() *RelationResponse {
	return &RelationResponse{
		MovieID:     r.MovieID,
		ActorID:     r.ActorID,
		Role:        r.Role,
		CreditOrder: r.CreditOrder,
	}
}

func ToResponses(relations []Relation) []*RelationResponse {
	out := make([]*RelationResponse, 0, len(relations))
	for i := range relations {
		out = append(out, relations[i].ToResponse())
	}
	return out
}

// CastMember is an active actor credited on a movie.
type CastMember struct {
	ActorID     uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	BirthDate   *time.Time `db:"birth_date"`
	Biography   *string    `db:"biography"`
	Nationality *string    `db:"nationality"`
	Role        *string    `db:"role"`
	CreditOrder *int       `db:"credit_order"`
}

// Credit is an active movie an actor is credited on.
type Credit struct {
	MovieID     uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	ReleaseDate *time.Time `db:"release_date"`
	Genre       *string    `db:"genre"`
	Role        *string    `db:"role"`
	CreditOrder *int       `db:"credit_order"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(patch.DateLayout)
	return &s
}

func (m *CastMember) ToResponse() *CastMemberResponse {
	return &CastMemberResponse{
		ActorID:     m.ActorID,
		Name:        m.Name,
		BirthDate:   formatDate(m.BirthDate),
		Biography:   m.Biography,
		Nationality: m.Nationality,
		Role:        m.Role,
		CreditOrder: m.CreditOrder,
	}
}

func (c *Credit) ToResponse() *CreditResponse {
	return &CreditResponse{
		MovieID:     c.MovieID,
		Title:       c.Title,
		ReleaseDate: formatDate(c.ReleaseDate),
		Genre:       c.Genre,
		Role:        c.Role,
		CreditOrder: c.CreditOrder,
	}
}
