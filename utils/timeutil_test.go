package utils

import (
	"testing"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/stretchr/testify/assert"
)

func TestWeekStartLandsOnSunday(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	wed := time.Date(2025, time.June, 11, 14, 30, 0, 0, time.Local)
	start := WeekStart(wed)

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 8, start.Day())
}

func TestWeekStartOfSundayIsItself(t *testing.T) {
	sun := time.Date(2025, time.June, 8, 23, 59, 0, 0, time.Local)
	start := WeekStart(sun)
	assert.Equal(t, DayStart(sun), start)
}

func TestDateOfWeekday(t *testing.T) {
	week := WeekStartNanos(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.Local))

	assert.Equal(t, week, DateOfWeekday(week, models.Sunday))

	fri := FromNanos(DateOfWeekday(week, models.Friday))
	assert.Equal(t, time.Friday, fri.Weekday())
	assert.Equal(t, 13, fri.Day())
	assert.Equal(t, 0, fri.Hour())
}

func TestDayTag(t *testing.T) {
	assert.Equal(t, models.Sunday, models.DayTag(time.Sunday))
	assert.Equal(t, models.Wednesday, models.DayTag(time.Wednesday))
	assert.Equal(t, models.Saturday, models.DayTag(time.Saturday))
}

func TestFromNanosRoundTrip(t *testing.T) {
	now := time.Now()
	assert.True(t, now.Equal(FromNanos(now.UnixNano())))
}
