package services

import (
	"testing"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sayingsByStyle(t *testing.T, style string) []models.MotivationalSaying {
	t.Helper()
	var out []models.MotivationalSaying
	require.NoError(t, db.DB.Where("style = ?", style).Order("id").Find(&out).Error)
	return out
}

func TestSeedMotivationalSayingsIdempotent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SeedMotivationalSayings())
	var first int64
	require.NoError(t, db.DB.Model(&models.MotivationalSaying{}).Count(&first).Error)
	require.Positive(t, first)

	require.NoError(t, SeedMotivationalSayings())
	var second int64
	require.NoError(t, db.DB.Model(&models.MotivationalSaying{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestDailySayingStableWithinDay(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedMotivationalSayings())
	user := createTestUser(t, "maria", models.RoleUser)

	morning := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.June, 10, 22, 0, 0, 0, time.Local)

	a, err := DailySaying(user.ID, morning)
	require.NoError(t, err)
	b, err := DailySaying(user.ID, evening)
	require.NoError(t, err)
	assert.Equal(t, a.Message, b.Message)
	assert.NotEmpty(t, a.Message)
}

func TestDailySayingFollowsStylePreference(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedMotivationalSayings())
	user := createTestUser(t, "maria", models.RoleUser)

	_, err := SaveUserProfile(user.ID, models.UserProfile{Name: "Maria", MotivationalStyle: models.StyleDirect})
	require.NoError(t, err)

	pool := sayingsByStyle(t, models.StyleDirect)
	require.NotEmpty(t, pool)

	got, err := DailySaying(user.ID, time.Now())
	require.NoError(t, err)

	found := false
	for _, s := range pool {
		if s.Message == got.Message {
			found = true
		}
	}
	assert.True(t, found, "saying should come from the direct pool")
}

func TestDailySayingDefaultsWithoutProfile(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedMotivationalSayings())
	user := createTestUser(t, "maria", models.RoleUser)

	pool := sayingsByStyle(t, models.StyleBalanced)
	require.NotEmpty(t, pool)

	got, err := DailySaying(user.ID, time.Now())
	require.NoError(t, err)

	found := false
	for _, s := range pool {
		if s.Message == got.Message {
			found = true
		}
	}
	assert.True(t, found, "saying should come from the balanced pool")
}

func TestDailySayingEmptyPool(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria", models.RoleUser)

	got, err := DailySaying(user.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, defaultSaying.Message, got.Message)
}
