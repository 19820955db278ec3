package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/cooklyapp/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// handleServiceError maps service sentinel errors to HTTP statuses.
// Anything unrecognized is reported as a generic internal error so
// storage details never leak to clients.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrParentNotFound),
		errors.Is(err, service.ErrParentMismatch),
		errors.Is(err, service.ErrNestedReply):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
