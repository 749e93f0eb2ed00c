package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/review/model"
	"movie-catalog-backend/pkg/database"
)

// =====================================================
// REVIEW SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]*model.ReviewResponse, error)
	GetReview(ctx context.Context, id uuid.UUID) (*model.ReviewResponse, error)

	// Mutations recompute the movie's average rating in the same transaction.
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.ReviewResponse, error)
	UpdateReview(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ReviewResponse, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

// Movies is the part of the movie repository reviews depend on.
type Movies interface {
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)
	RefreshAverageRating(ctx context.Context, id uuid.UUID) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn database.TxFunc) error
}
