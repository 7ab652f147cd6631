package handlers

import (
	"errors"
	"net/http"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Every
// error becomes a user-visible message; none are fatal and none are retried.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var authErr *models.AuthError
	var storeErr *models.StoreError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &storeErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
