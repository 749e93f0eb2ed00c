package handler

import (
	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/domains/actor/model"
	"movie-catalog-backend/internal/domains/actor/service"
	"movie-catalog-backend/internal/shared/response"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/internal/shared/validator"
)

type ActorHandler struct {
	actorService service.ServiceInterface
}

func NewActorHandler(actorService service.ServiceInterface) *ActorHandler {
	return &ActorHandler{actorService: actorService}
}

// GET /actors
func (h *ActorHandler) ListActors(c *gin.Context) {
	actors, err := h.actorService.ListActors(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, actors)
}

// GET /actors/:id
func (h *ActorHandler) GetActor(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	actor, err := h.actorService.GetActor(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, actor)
}

// POST /actors
func (h *ActorHandler) CreateActor(c *gin.Context) {
	var req model.CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	actor, err := h.actorService.CreateActor(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, actor)
}

// PUT /actors/:id
func (h *ActorHandler) UpdateActor(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, validator.CodeInvalidBody, err.Error())
		return
	}

	actor, err := h.actorService.UpdateActor(c.Request.Context(), id, fields)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, actor)
}

// DELETE /actors/:id
func (h *ActorHandler) DeleteActor(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.FromError(c, model.ErrInvalidID)
		return
	}

	if err := h.actorService.DeleteActor(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *ActorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	actors := rg.Group("/actors")
	{
		actors.GET("", h.ListActors)
		actors.GET("/:id", h.GetActor)
		actors.POST("", h.CreateActor)
		actors.PUT("/:id", h.UpdateActor)
		actors.DELETE("/:id", h.DeleteActor)
	}
}
