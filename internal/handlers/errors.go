package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/workreward/work-reward-api/internal/errors"
	"github.com/workreward/work-reward-api/internal/services"
)

// respondServiceError maps a service error to an HTTP response by its
// error kind.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		apierrors.InvalidOperation(c, err.Error())
	case errors.Is(err, services.ErrInvalidTarget), errors.Is(err, services.ErrInvalidInput):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Printf("Unexpected service error: %v", err)
		apierrors.InternalError(c, "")
	}
}

// parseIDParam parses a numeric URL parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
