package services

import (
	"testing"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checklistOn seeds a canonical checklist row for the given calendar day
// with one planned resistance entry.
func checklistOn(t *testing.T, userID uint, day time.Time, completed bool) {
	t.Helper()
	start := utils.DayStart(day)
	row := models.DailyChecklist{
		UserID: userID,
		Day:    models.DayTag(start.Weekday()),
		Date:   start.UnixNano(),
		Resistance: models.ExerciseList{
			{Exercise: "squats", Planned: true, Completed: completed},
		},
	}
	require.NoError(t, db.DB.Create(&row).Error)
}

func TestComputeProgressDataEmpty(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)

	data, err := ComputeProgressData(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, data.TotalCompletedExercises)
	assert.Equal(t, 0, data.TotalResistanceCompleted)
	assert.NotNil(t, data.WeeklyProgress)
	assert.Empty(t, data.WeeklyProgress)
}

func TestComputeProgressDataCounts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)
	week := utils.WeekStartNanos(time.Now())

	require.NoError(t, UpsertWeek(user.ID, planWith(t, week, models.Monday, models.Resistance, "squats", "lunges")))
	require.NoError(t, UpsertWeek(user.ID, planWith(t, week, models.Tuesday, models.Cardio, "running")))
	require.NoError(t, ToggleCompletion(user.ID, models.Monday, models.Resistance, 0))
	require.NoError(t, ToggleCompletion(user.ID, models.Tuesday, models.Cardio, 0))

	data, err := ComputeProgressData(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, data.TotalCompletedExercises)
	assert.Equal(t, 1, data.TotalResistanceCompleted)
	assert.Equal(t, 1, data.TotalCardioCompleted)
	assert.Equal(t, 0, data.TotalCoreCompleted)

	for _, day := range data.WeeklyProgress {
		switch day.Day {
		case models.Monday:
			assert.Equal(t, 1, day.ResistanceCompleted)
		case models.Tuesday:
			assert.Equal(t, 1, day.CardioCompleted)
		}
	}
}

func TestStreakThreeDays(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)
	now := time.Now()

	checklistOn(t, user.ID, now, true)
	checklistOn(t, user.ID, now.AddDate(0, 0, -1), true)
	checklistOn(t, user.ID, now.AddDate(0, 0, -2), true)
	// Planned but never completed: breaks the walk here.
	checklistOn(t, user.ID, now.AddDate(0, 0, -3), false)
	checklistOn(t, user.ID, now.AddDate(0, 0, -4), true)

	streak, err := ComputeStreakData(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Equal(t, 3, streak.MaxStreak)
}

func TestStreakSkipsGapDays(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)
	now := time.Now()

	checklistOn(t, user.ID, now, true)
	// No row yesterday at all: a rest day, not a break.
	checklistOn(t, user.ID, now.AddDate(0, 0, -2), true)

	streak, err := ComputeStreakData(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
}

func TestStreakZeroWithoutToday(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)
	now := time.Now()

	checklistOn(t, user.ID, now.AddDate(0, 0, -1), true)
	checklistOn(t, user.ID, now.AddDate(0, 0, -2), true)

	streak, err := ComputeStreakData(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
}

func TestMaxStreakMonotonic(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)
	now := time.Now()

	checklistOn(t, user.ID, now, true)
	checklistOn(t, user.ID, now.AddDate(0, 0, -1), true)

	streak, err := ComputeStreakData(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.MaxStreak)

	// Losing history shrinks the current streak, never the watermark.
	require.NoError(t, db.DB.Where("user_id = ?", user.ID).
		Delete(&models.DailyChecklist{}).Error)

	streak, err = ComputeStreakData(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
	assert.Equal(t, 2, streak.MaxStreak)
	assert.GreaterOrEqual(t, streak.MaxStreak, streak.CurrentStreak)
}

func TestBurnedCalorieSummary(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)
	now := time.Now()

	require.NoError(t, AddBurnedCalorieEntry(user.ID, models.BurnedCalorieEntry{
		Date: utils.DayStart(now).Add(8 * time.Hour).UnixNano(), CaloriesBurned: 300,
	}))
	require.NoError(t, AddBurnedCalorieEntry(user.ID, models.BurnedCalorieEntry{
		Date: utils.DayStart(now).Add(18 * time.Hour).UnixNano(), CaloriesBurned: 150,
	}))
	// Yesterday's entry stays out of the daily total.
	require.NoError(t, AddBurnedCalorieEntry(user.ID, models.BurnedCalorieEntry{
		Date: utils.DayStart(now).AddDate(0, 0, -1).UnixNano(), CaloriesBurned: 500,
	}))

	summary, err := ComputeBurnedCalorieSummary(user.ID, now)
	require.NoError(t, err)
	assert.EqualValues(t, 450, summary.DailyTotal)
	assert.Len(t, summary.DailyEntries, 2)
}

func TestBurnedCalorieSummaryEmpty(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)

	summary, err := ComputeBurnedCalorieSummary(user.ID, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.DailyTotal)
	assert.NotNil(t, summary.DailyEntries)
	assert.Empty(t, summary.DailyEntries)
}

func TestCurrentDayInfo(t *testing.T) {
	now := time.Date(2025, time.March, 3, 15, 0, 0, 0, time.Local) // a Monday
	info := CurrentDayInfo(now)
	assert.Equal(t, models.Monday, info.DayOfWeek)
	assert.Equal(t, "Monday, March 3, 2025", info.FullDate)
}
