package services

import (
	"errors"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"gorm.io/gorm"
)

type MotivationalSaying struct {
	Message string `json:"message"`
	Author  string `json:"author"`
}

var defaultSaying = MotivationalSaying{
	Message: "Small steps every day add up to big results.",
	Author:  "Unknown",
}

// DailySaying picks today's saying for the caller, filtered by their
// motivational style preference. The pick rotates by day of year so the
// whole day sees the same saying without storing anything.
func DailySaying(userID uint, now time.Time) (*MotivationalSaying, error) {
	style := models.StyleBalanced
	var profile models.UserProfile
	err := db.DB.Where("user_id = ?", userID).First(&profile).Error
	if err == nil && profile.MotivationalStyle != "" {
		style = profile.MotivationalStyle
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var sayings []models.MotivationalSaying
	if err := db.DB.Where("style = ?", style).Order("id").Find(&sayings).Error; err != nil {
		return nil, err
	}
	if len(sayings) == 0 {
		// style has no seed rows, fall back to the whole pool
		if err := db.DB.Order("id").Find(&sayings).Error; err != nil {
			return nil, err
		}
	}
	if len(sayings) == 0 {
		s := defaultSaying
		return &s, nil
	}

	pick := sayings[now.YearDay()%len(sayings)]
	return &MotivationalSaying{Message: pick.Message, Author: pick.Author}, nil
}

// SeedMotivationalSayings loads the built-in pool once; reruns are no-ops.
func SeedMotivationalSayings() error {
	var count int64
	if err := db.DB.Model(&models.MotivationalSaying{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sayings := []models.MotivationalSaying{
		{Style: models.StyleGentle, Message: "Be kind to yourself today. Progress is progress, no matter how small.", Author: "Unknown"},
		{Style: models.StyleGentle, Message: "Every healthy choice is a gift to your future self.", Author: "Unknown"},
		{Style: models.StyleGentle, Message: "Rest when you need to. Showing up again tomorrow is what counts.", Author: "Unknown"},
		{Style: models.StyleDirect, Message: "Nobody else will do the work for you. Get moving.", Author: "Unknown"},
		{Style: models.StyleDirect, Message: "You don't find willpower. You build it, one rep at a time.", Author: "Unknown"},
		{Style: models.StyleDirect, Message: "Excuses burn zero calories. The workout is waiting.", Author: "Unknown"},
		{Style: models.StyleBalanced, Message: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
		{Style: models.StyleBalanced, Message: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
		{Style: models.StyleBalanced, Message: "Small steps every day add up to big results.", Author: "Unknown"},
		{Style: models.StyleBalanced, Message: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier"},
	}
	return db.DB.Create(&sayings).Error
}
