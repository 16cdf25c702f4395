package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/domain/service"
	"github.com/kroue/AlertX/internal/usecase"
)

// respondError maps domain errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	var validation *service.ValidationError
	var dispatch *service.DispatchError

	switch {
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, repository.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"field":   validation.Field,
			"message": validation.Message,
		})
	case errors.As(err, &dispatch):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "dispatch_failed",
			"message": dispatch.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownClass),
		errors.Is(err, usecase.ErrUnknownSurface),
		errors.Is(err, usecase.ErrSurfaceMismatch),
		errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrBoundaryTooSmall),
		errors.Is(err, service.ErrBoundarySurface):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": "Invalid JSON format: " + err.Error(),
	})
}
