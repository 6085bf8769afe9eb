package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.User{}, false
	}
	return user, true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return 0, false
	}
	return index, true
}

// serviceError translates the service error taxonomy into HTTP codes.
func serviceError(c *gin.Context, handler string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrInvalidIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		utils.ErrorCount.WithLabelValues(handler, "internal").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
