package handlers

import (
	"net/http"
	"strconv"

	"github.com/aselzhanova/FitJourneyBackend/middleware"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/services"
	"github.com/gin-gonic/gin"
)

// InitializeAccessControl is safe to call repeatedly: the first caller
// becomes admin, everyone after gets the user role, and nobody is ever
// demoted by a repeat call.
func InitializeAccessControl(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := services.InitializeAccessControl(user.ID); err != nil {
		serviceError(c, "initialize_access_control", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Access control initialized"})
}

func GetCallerUserRole(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

func IsCallerAdmin(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": user.Role == models.RoleAdmin})
}

type assignRoleInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func AssignUserRole(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input assignRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := services.AssignUserRole(user, input.UserID, input.Role); err != nil {
		serviceError(c, "assign_user_role", err)
		return
	}
	middleware.InvalidateUserCache(input.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Role assigned"})
}

func GetCallerUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := services.GetUserProfile(user, user.ID)
	if err != nil {
		serviceError(c, "get_caller_user_profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type profileInput struct {
	Name              string `json:"name" validate:"required,max=100"`
	Email             string `json:"email" validate:"omitempty,email"`
	MotivationalStyle string `json:"motivational_style"`
	ShareProgress     bool   `json:"share_progress"`
}

func SaveCallerUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if err := middleware.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	profile, err := services.SaveUserProfile(user.ID, models.UserProfile{
		Name:              input.Name,
		Email:             input.Email,
		MotivationalStyle: input.MotivationalStyle,
		ShareProgress:     input.ShareProgress,
	})
	if err != nil {
		serviceError(c, "save_caller_user_profile", err)
		return
	}
	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved", "profile": profile})
}

// GetUserProfile serves the admin/self read rule: admins may read any
// profile, everyone else only their own.
func GetUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	profile, err := services.GetUserProfile(user, uint(targetID))
	if err != nil {
		serviceError(c, "get_user_profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
