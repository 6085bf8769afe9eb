package handlers

import (
	"net/http"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/gin-gonic/gin"
)

func AddMotivationalMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var msg models.MotivationalMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddMotivationalMessage(user.ID, msg); err != nil {
		serviceError(c, "add_motivational_message", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Motivational message added"})
}

func GetMotivationalMessages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	messages, err := services.GetMotivationalMessages(user.ID)
	if err != nil {
		serviceError(c, "get_motivational_messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func GetDailyMotivationalSaying(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	saying, err := services.DailySaying(user.ID, time.Now())
	if err != nil {
		serviceError(c, "get_daily_motivational_saying", err)
		return
	}
	c.JSON(http.StatusOK, saying)
}
