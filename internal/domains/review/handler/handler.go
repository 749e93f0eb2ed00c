package handler

import (
	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/domains/review/model"
	"movie-catalog-backend/internal/domains/review/service"
	"movie-catalog-backend/internal/shared/response"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/internal/shared/validator"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews lists active reviews, optionally for one movie
// GET /reviews?movie_id=
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	// Step 1: Bind query parameters
	var req model.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	// Step 2: Call service
	reviews, err := h.reviewService.ListReviews(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, reviews)
}

// GetReview gets review by ID
// GET /reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, review)
}

// CreateReview creates new review
// POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	// Step 2: Call service
	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Step 3: Return success
	response.Created(c, review)
}

// UpdateReview updates a subset of review fields
// PUT /reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	// Step 1: Parse review ID
	reviewID, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	// Step 2: Bind request body
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	// Step 3: Call service
	review, err := h.reviewService.UpdateReview(c.Request.Context(), reviewID, fields)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, review)
}

// DeleteReview soft-deletes a review
// DELETE /reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.GET("/:id", h.GetReview)
		reviews.POST("", h.CreateReview)
		reviews.PUT("/:id", h.UpdateReview)
		reviews.DELETE("/:id", h.DeleteReview)
	}
}
