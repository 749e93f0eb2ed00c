package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/internal/domains/movie/service"
	"movie-catalog-backend/internal/shared/response"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/internal/shared/validator"
)

// =====================================================
// MOVIE HANDLER
// =====================================================

type MovieHandler struct {
	movieService service.ServiceInterface
}

func NewMovieHandler(movieService service.ServiceInterface) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

func movieID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
	}
	return id, ok
}

// ListMovies lists active movies
// GET /movies
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.movieService.ListMovies(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, movies)
}

// GetMovie gets movie by ID
// GET /movies/:id
func (h *MovieHandler) GetMovie(c *gin.Context) {
	// Step 1: Parse movie ID
	id, ok := movieID(c)
	if !ok {
		return
	}

	// Step 2: Call service
	movie, err := h.movieService.GetMovie(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, movie)
}

// CreateMovie creates a movie
// POST /movies
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	// Step 2: Call service (validates)
	movie, err := h.movieService.CreateMovie(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, movie)
}

// UpdateMovie applies a partial update
// PUT /movies/:id
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	// Step 1: Parse movie ID
	id, ok := movieID(c)
	if !ok {
		return
	}

	// Step 2: Bind arbitrary fields, the registry decides what is writable
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	// Step 3: Call service
	movie, err := h.movieService.UpdateMovie(c.Request.Context(), id, fields)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, movie)
}

// DeleteMovie soft-deletes a movie and drops its cast
// DELETE /movies/:id
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	if err := h.movieService.DeleteMovie(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// RegisterRoutes mounts the movie endpoints on rg.
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.POST("", h.CreateMovie)
		movies.PUT("/:id", h.UpdateMovie)
		movies.DELETE("/:id", h.DeleteMovie)
	}
}
