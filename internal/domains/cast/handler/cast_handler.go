package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/cast/model"
	"movie-catalog-backend/internal/domains/cast/service"
	"movie-catalog-backend/internal/shared/response"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/internal/shared/validator"
)

type CastHandler struct {
	castService service.ServiceInterface
}

func NewCastHandler(castService service.ServiceInterface) *CastHandler {
	return &CastHandler{castService: castService}
}

// pairParams reads the (movieId, actorId) path pair.
func pairParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	movieID, ok := utils.ParseUUID(c.Param("movieId"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return uuid.Nil, uuid.Nil, false
	}
	actorID, ok := utils.ParseUUID(c.Param("actorId"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return uuid.Nil, uuid.Nil, false
	}
	return movieID, actorID, true
}

// GET /movie-actors
func (h *CastHandler) ListRelations(c *gin.Context) {
	relations, err := h.castService.ListRelations(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, relations)
}

// GET /movie-actors/movie/:id
func (h *CastHandler) ListByMovie(c *gin.Context) {
	movieID, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	cast, err := h.castService.ListByMovie(c.Request.Context(), movieID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, cast)
}

// GET /movie-actors/actor/:id
func (h *CastHandler) ListByActor(c *gin.Context) {
	actorID, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	credits, err := h.castService.ListByActor(c.Request.Context(), actorID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, credits)
}

// POST /movie-actors
func (h *CastHandler) CreateRelation(c *gin.Context) {
	var req model.CreateRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	relation, err := h.castService.CreateRelation(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, relation)
}

// PUT /movie-actors/:movieId/:actorId
func (h *CastHandler) UpdateRelation(c *gin.Context) {
	movieID, actorID, ok := pairParams(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	relation, err := h.castService.UpdateRelation(c.Request.Context(), movieID, actorID, fields)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, relation)
}

// DELETE /movie-actors/:movieId/:actorId
func (h *CastHandler) DeleteRelation(c *gin.Context) {
	movieID, actorID, ok := pairParams(c)
	if !ok {
		return
	}

	if err := h.castService.DeleteRelation(c.Request.Context(), movieID, actorID); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *CastHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cast := rg.Group("/movie-actors")
	{
		cast.GET("", h.ListRelations)
		cast.GET("/movie/:id", h.ListByMovie)
		cast.GET("/actor/:id", h.ListByActor)
		cast.POST("", h.CreateRelation)
		cast.PUT("/:movieId/:actorId", h.UpdateRelation)
		cast.DELETE("/:movieId/:actorId", h.DeleteRelation)
	}
}
