package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/domains/review/model"
	"movie-catalog-backend/internal/domains/review/repository"
	"movie-catalog-backend/internal/shared/validator"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movies     Movies
	tx         TxRunner
}

func NewReviewService(reviewRepo repository.ReviewRepository, movies Movies, tx TxRunner) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		movies:     movies,
		tx:         tx,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, validator.Reject(err)
	}

	reviews, err := s.reviewRepo.ListActive(ctx, req.MovieFilter())
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return model.ToResponses(reviews), nil
}

func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*model.ReviewResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidID
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, validator.AsAppError(err)
	}
	return review.ToResponse(), nil
}

func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.ReviewResponse, error) {
	// Step 1: Validate
	if err := req.Validate(); err != nil {
		return nil, validator.Reject(err)
	}
	review := req.ToReview()

	var created *model.Review
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 2: Referenced movie must be active
		exists, err := s.movies.ExistsActive(ctx, review.MovieID)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrMovieNotFound
		}

		// Step 3: Insert
		created, err = s.reviewRepo.Create(ctx, review)
		if err != nil {
			return err
		}

		// Step 4: Recompute rating
		return s.movies.RefreshAverageRating(ctx, review.MovieID)
	})
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	log.Info().
		Str("review_id", created.ID.String()).
		Str("movie_id", created.MovieID.String()).
		Int("score", created.Score).
		Msg("[ReviewService] Review created")

	return created.ToResponse(), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ReviewResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidID
	}
	if err := model.UpdateFields.Validate(fields); err != nil {
		return nil, validator.Reject(err)
	}

	var updated *model.Review
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.reviewRepo.Update(ctx, id, fields)
		if err != nil {
			return err
		}
		return s.movies.RefreshAverageRating(ctx, updated.MovieID)
	})
	if err != nil {
		return nil, validator.AsAppError(err)
	}

	log.Info().Str("review_id", id.String()).Msg("[ReviewService] Review updated")
	return updated.ToResponse(), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrInvalidID
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		movieID, err := s.reviewRepo.SoftDelete(ctx, id)
		if err != nil {
			return err
		}
		return s.movies.RefreshAverageRating(ctx, movieID)
	})
	if err != nil {
		return validator.AsAppError(err)
	}

	log.Info().Str("review_id", id.String()).Msg("[ReviewService] Review deleted")
	return nil
}
