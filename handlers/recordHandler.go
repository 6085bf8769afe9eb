package handlers

import (
	"net/http"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/gin-gonic/gin"
)

func AddWeightRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var rec models.WeightRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddWeightRecord(user.ID, rec); err != nil {
		serviceError(c, "add_weight_record", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Weight record added"})
}

func GetWeightRecords(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	records, err := services.GetWeightRecords(user.ID)
	if err != nil {
		serviceError(c, "get_weight_records", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func UpdateWeightRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var rec models.WeightRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.UpdateWeightRecord(user.ID, index, rec); err != nil {
		serviceError(c, "update_weight_record", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Weight record updated"})
}

func AddCalorieEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var entry models.CalorieEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddCalorieEntry(user.ID, entry); err != nil {
		serviceError(c, "add_calorie_entry", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Calorie entry added"})
}

func GetCalorieEntries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := services.GetCalorieEntries(user.ID)
	if err != nil {
		serviceError(c, "get_calorie_entries", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func UpdateCalorieEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var entry models.CalorieEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.UpdateCalorieEntry(user.ID, index, entry); err != nil {
		serviceError(c, "update_calorie_entry", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Calorie entry updated"})
}

func AddBurnedCalorieEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var entry models.BurnedCalorieEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddBurnedCalorieEntry(user.ID, entry); err != nil {
		serviceError(c, "add_burned_calorie_entry", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Burned calorie entry added"})
}

func GetBurnedCalorieEntries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := services.GetBurnedCalorieEntries(user.ID)
	if err != nil {
		serviceError(c, "get_burned_calorie_entries", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func UpdateBurnedCalorieEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var entry models.BurnedCalorieEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.UpdateBurnedCalorieEntry(user.ID, index, entry); err != nil {
		serviceError(c, "update_burned_calorie_entry", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Burned calorie entry updated"})
}

func GetBurnedCalorieSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	summary, err := services.ComputeBurnedCalorieSummary(user.ID, time.Now())
	if err != nil {
		serviceError(c, "get_burned_calorie_summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func AddBodyMeasurement(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var m models.BodyMeasurements
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddBodyMeasurement(user.ID, m); err != nil {
		serviceError(c, "add_body_measurement", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Measurement added"})
}

func GetBodyMeasurements(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	measurements, err := services.GetBodyMeasurements(user.ID)
	if err != nil {
		serviceError(c, "get_body_measurements", err)
		return
	}
	c.JSON(http.StatusOK, measurements)
}

func UpdateBodyMeasurement(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var m models.BodyMeasurements
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.UpdateBodyMeasurement(user.ID, index, m); err != nil {
		serviceError(c, "update_body_measurement", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Measurement updated"})
}

func AddMoodEnergyLog(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var log models.MoodEnergyLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AddMoodEnergyLog(user.ID, log); err != nil {
		serviceError(c, "add_mood_energy_log", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Mood log added"})
}

func GetMoodEnergyLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	logs, err := services.GetMoodEnergyLogs(user.ID)
	if err != nil {
		serviceError(c, "get_mood_energy_logs", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
