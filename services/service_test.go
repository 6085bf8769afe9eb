package services

import (
	"fmt"
	"testing"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global db handle at a fresh in-memory SQLite
// database, one per test.
func setupTestDB(t *testing.T) {
	t.Helper()
	utils.Logger = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.WeightRecord{},
		&models.CalorieEntry{},
		&models.BurnedCalorieEntry{},
		&models.BodyMeasurements{},
		&models.MoodEnergyLog{},
		&models.MotivationalMessage{},
		&models.MotivationalSaying{},
		&models.ProgressPhoto{},
		&models.ProgressSummary{},
		&models.FileReference{},
		&models.WeeklyExercisePlan{},
		&models.DailyChecklist{},
		&models.StreakRecord{},
	))

	db.DB = gdb
	t.Cleanup(func() {
		sqlDB.Close()
		db.DB = nil
	})
}

func createTestUser(t *testing.T, username, role string) models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}
