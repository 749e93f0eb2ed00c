package response

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/internal/shared/apperror"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Detail  string   `json:"detail,omitempty"`
}

var exposeInternal atomic.Bool

// ExposeInternalErrors adds the underlying error text to 500 responses.
// Development only.
func ExposeInternalErrors(enabled bool) {
	exposeInternal.Store(enabled)
}

// Success responses carry the resource itself, no envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, Error{Code: code, Message: message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details []string) {
	c.AbortWithStatusJSON(statusCode, Error{Code: code, Message: message, Errors: details})
}

func BadRequest(c *gin.Context, code, message string, details ...string) {
	ErrorWithDetails(c, http.StatusBadRequest, code, message, details)
}

func NotFound(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

func TooManyRequests(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", message)
}

func InternalServerError(c *gin.Context, err error) {
	body := Error{Code: apperror.CodeStorage, Message: "internal server error"}
	if err != nil && exposeInternal.Load() {
		body.Detail = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// FromError writes the response for err according to its apperror kind.
// Storage failures are logged; their detail is only exposed in development.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Storage(err)
	}

	if appErr.Kind == apperror.KindStorage {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		InternalServerError(c, appErr.Err)
		return
	}

	ErrorWithDetails(c, appErr.Kind.HTTPStatus(), appErr.Code, appErr.Message, appErr.Details)
}
