package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateReviewRequest struct {
	MovieID      string  `json:"movie_id"`
	ReviewerName string  `json:"reviewer_name"`
	Score        *int    `json:"score"`
	Comment      *string `json:"comment"`
	Recommended  *bool   `json:"recommended"`
}

func (r CreateReviewRequest) Validate() error {
	r.ReviewerName = strings.TrimSpace(r.ReviewerName)
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID,
			validation.Required.Error("movie_id is required"),
			is.UUID.Error("movie_id must be a valid UUID"),
		),
		validation.Field(&r.ReviewerName,
			validation.Required.Error("reviewer_name is required"),
			validation.Length(1, MaxReviewerNameLength),
		),
		validation.Field(&r.Score,
			validation.NotNil.Error("score is required"),
			validation.Min(MinScore).Error("score must be between 0 and 10"),
			validation.Max(MaxScore).Error("score must be between 0 and 10"),
		),
		validation.Field(&r.Comment, validation.Length(0, MaxCommentLength)),
	)
}

// ToReview assumes Validate passed. recommended defaults to false.
func (r CreateReviewRequest) ToReview() *Review {
	review := &Review{
		ID:           uuid.New(),
		MovieID:      uuid.MustParse(r.MovieID),
		ReviewerName: strings.TrimSpace(r.ReviewerName),
		Comment:      r.Comment,
	}
	if r.Score != nil {
		review.Score = *r.Score
	}
	if r.Recommended != nil {
		review.Recommended = *r.Recommended
	}
	return review
}

// ListReviewsRequest filters GET /reviews.
type ListReviewsRequest struct {
	MovieID string `form:"movie_id"`
}

func (r ListReviewsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID, is.UUID.Error("movie_id must be a valid UUID")),
	)
}

// MovieFilter returns nil when no movie filter was given.
func (r ListReviewsRequest) MovieFilter() *uuid.UUID {
	if r.MovieID == "" {
		return nil
	}
	id, err := uuid.Parse(r.MovieID)
	if err != nil {
		return nil
	}
	return &id
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	MovieID      uuid.UUID `json:"movie_id"`
	ReviewerName string    `json:"reviewer_name"`
	Score        int       `json:"score"`
	Comment      *string   `json:"comment"`
	Recommended  bool      `json:"recommended"`
	CreatedAt    time.Time `json:"created_at"`
}
