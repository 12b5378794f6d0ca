package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/middleware"
	"github.com/dev-modakk/modakk-backend/internal/service"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
	"github.com/dev-modakk/modakk-backend/internal/validator"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Responder renders service errors as HTTP responses.
type Responder struct {
	// ExposeErrors includes internal error text in 500 responses.
	ExposeErrors bool
}

// Fail maps err onto a status code and body. notFound is the message used
// for domain.ErrNotFound.
func (r Responder) Fail(c *gin.Context, err error, notFound string) {
	var (
		fieldErrs validator.FieldErrors
		fileErr   *tabular.FileError
		slideErrs service.SlideErrors
		tooLarge  *http.MaxBytesError
	)

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgValidationFailed, Details: fieldErrs.Map()})
	case errors.Is(err, domain.ErrEmptyPatch):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgValidationFailed, Message: "At least one field must be provided"})
	case errors.As(err, &fileErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: fileErr.Error()})
	case errors.As(err, &slideErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: MsgRowsInvalid, Details: []service.SlideError(slideErrs)})
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: MsgBodyTooLarge})
	case errors.Is(err, domain.ErrTooManyImages):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: MsgTooManyImages})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: notFound})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Resource already exists."})
	case errors.Is(err, service.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).ErrorContext(c.Request.Context(), "Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err)
		body := ErrorResponse{Error: MsgInternal}
		if r.ExposeErrors {
			body.Message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// BadJSON responds to a request body that could not be decoded.
func (r Responder) BadJSON(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: MsgBodyTooLarge})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON, Message: err.Error()})
}
