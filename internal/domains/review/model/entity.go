package model

import (
	"time"

	"github.com/google/uuid"
)

// Review maps the reviews table.
type Review struct {
	ID           uuid.UUID  `db:"id"`
	MovieID      uuid.UUID  `db:"movie_id"`
	ReviewerName string     `db:"reviewer_name"`
	Score        int        `db:"score"`
	Comment      *string    `db:"comment"`
	Recommended  bool       `db:"recommended"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

const Columns = "id, movie_id, reviewer_name, score, comment, recommended, created_at, deleted_at"

func (r *Review) ToResponse() *ReviewResponse {
	return &ReviewResponse{
		ID:           r.ID,
		MovieID:      r.MovieID,
		ReviewerName: r.ReviewerName,
		Score:        r.Score,
		Comment:      r.Comment,
		Recommended:  r.Recommended,
		CreatedAt:    r.CreatedAt,
	}
}

func ToResponses(reviews []Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviews[i].ToResponse())
	}
	return out
}
