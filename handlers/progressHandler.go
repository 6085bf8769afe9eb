package handlers

import (
	"net/http"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/gin-gonic/gin"
)

func GetProgressData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	data, err := services.ComputeProgressData(user.ID)
	if err != nil {
		serviceError(c, "get_progress_data", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func GetStreakData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	data, err := services.ComputeStreakData(user.ID, time.Now())
	if err != nil {
		serviceError(c, "get_streak_data", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func GetCurrentDayInfo(c *gin.Context) {
	c.JSON(http.StatusOK, services.CurrentDayInfo(time.Now()))
}

func AddProgressSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var summary models.ProgressSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddProgressSummary(user.ID, summary); err != nil {
		serviceError(c, "add_progress_summary", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Progress summary added"})
}

func GetProgressSummaries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	summaries, err := services.GetProgressSummaries(user.ID)
	if err != nil {
		serviceError(c, "get_progress_summaries", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
