package services

import (
	"errors"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Access gate: every record collection is partitioned by user ID, and
// role checks happen here rather than in each handler.

// InitializeAccessControl bootstraps roles: the first caller ever to
// invoke it becomes admin, later callers are promoted from guest to
// user. Repeat calls never demote anyone or create duplicate
// assignments.
func InitializeAccessControl(userID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var caller models.User
		if err := tx.First(&caller, userID).Error; err != nil {
			return ErrNotFound
		}
		if caller.Role == models.RoleAdmin {
			return nil
		}

		var adminCount int64
		if err := tx.Model(&models.User{}).Where("role = ?", models.RoleAdmin).
			Count(&adminCount).Error; err != nil {
			return err
		}

		role := models.RoleUser
		if adminCount == 0 {
			role = models.RoleAdmin
		}
		if caller.Role == role {
			return nil
		}

		if err := tx.Model(&caller).Update("role", role).Error; err != nil {
			return err
		}
		utils.Logger.Info("access_control_initialized",
			zap.Uint("user_id", userID),
			zap.String("role", role),
		)
		return nil
	})
}

// AssignUserRole is admin-only.
func AssignUserRole(caller models.User, targetID uint, role string) error {
	if caller.Role != models.RoleAdmin {
		return ErrUnauthorized
	}
	switch role {
	case models.RoleAdmin, models.RoleUser, models.RoleGuest:
	default:
		return ErrInvalidInput
	}

	res := db.DB.Model(&models.User{}).Where("id = ?", targetID).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	utils.Logger.Info("role_assigned",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("target_id", targetID),
		zap.String("role", role),
	)
	return nil
}

// GetUserProfile enforces the read rule: owners read their own profile,
// admins may read anyone's. Writes stay owner-only (SaveUserProfile).
func GetUserProfile(caller models.User, targetID uint) (*models.UserProfile, error) {
	if caller.ID != targetID && caller.Role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}
	var profile models.UserProfile
	err := db.DB.Where("user_id = ?", targetID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveUserProfile creates or overwrites the caller's profile wholesale.
func SaveUserProfile(userID uint, in models.UserProfile) (*models.UserProfile, error) {
	switch in.MotivationalStyle {
	case models.StyleGentle, models.StyleDirect, models.StyleBalanced:
	case "":
		in.MotivationalStyle = models.StyleBalanced
	default:
		return nil, ErrInvalidInput
	}

	var profile models.UserProfile
	err := db.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	profile.Name = in.Name
	profile.Email = in.Email
	profile.MotivationalStyle = in.MotivationalStyle
	profile.ShareProgress = in.ShareProgress

	if err := db.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
