package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/gin-gonic/gin"
)

func AddWeeklyExercisePlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var plan models.WeeklyExercisePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.UpsertWeek(user.ID, plan); err != nil {
		serviceError(c, "add_weekly_plan", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Weekly plan saved"})
}

func GetWeeklyExercisePlans(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	plans, err := services.GetWeeklyPlans(user.ID)
	if err != nil {
		serviceError(c, "get_weekly_plans", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func DeleteWeeklyExercisePlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	weekStart, err := strconv.ParseInt(c.Param("weekStart"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week start date"})
		return
	}
	if err := services.DeleteWeeklyPlan(user.ID, weekStart); err != nil {
		serviceError(c, "delete_weekly_plan", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Weekly plan deleted"})
}

func GetDailyChecklists(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	checklists, err := services.GetDailyChecklists(user.ID)
	if err != nil {
		serviceError(c, "get_daily_checklists", err)
		return
	}
	c.JSON(http.StatusOK, checklists)
}

type checklistTarget struct {
	Day      models.DayOfWeek        `json:"day" binding:"required"`
	Category models.ExerciseCategory `json:"category" binding:"required"`
	Index    *int                    `json:"index" binding:"required"`
}

func ToggleExerciseCompletion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input checklistTarget
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.ToggleCompletion(user.ID, input.Day, input.Category, *input.Index); err != nil {
		serviceError(c, "toggle_exercise_completion", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Exercise completion toggled"})
}

func DeleteExerciseFromChecklist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input checklistTarget
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.DeleteExerciseFromChecklist(user.ID, input.Day, input.Category, *input.Index); err != nil {
		serviceError(c, "delete_exercise_from_checklist", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Exercise removed from checklist"})
}

type plannerTarget struct {
	WeekStartDate int64                   `json:"week_start_date" binding:"required"`
	Day           models.DayOfWeek        `json:"day" binding:"required"`
	Category      models.ExerciseCategory `json:"category" binding:"required"`
	Index         *int                    `json:"index" binding:"required"`
}

// DeleteExerciseFromPlanner removes the exercise from the plan and the
// checklist in one call so the two views cannot drift apart.
func DeleteExerciseFromPlanner(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input plannerTarget
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.DeleteExerciseFromPlanner(user.ID, input.WeekStartDate, input.Day, input.Category, *input.Index); err != nil {
		serviceError(c, "delete_exercise_from_planner", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Exercise removed from planner"})
}

func DeleteCurrentWeek(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := services.DeleteCurrentWeek(user.ID, time.Now()); err != nil {
		serviceError(c, "delete_current_week", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Current week deleted"})
}
