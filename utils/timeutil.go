package utils

import (
	"time"

	"github.com/aselzhanova/FitJourneyBackend/models"
)

// All stored timestamps are nanoseconds since the Unix epoch.

func NowNanos() int64 {
	return time.Now().UnixNano()
}

func FromNanos(ns int64) time.Time {
	return time.Unix(0, ns)
}

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns local midnight of the Sunday starting t's week.
func WeekStart(t time.Time) time.Time {
	d := DayStart(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func WeekStartNanos(t time.Time) int64 {
	return WeekStart(t).UnixNano()
}

// DateOfWeekday returns local midnight of the given weekday tag within the
// week starting at weekStart nanos. AddDate keeps the result on a calendar
// day boundary across DST shifts.
func DateOfWeekday(weekStart int64, day models.DayOfWeek) int64 {
	start := FromNanos(weekStart)
	for i, tag := range models.WeekDays {
		if tag == day {
			return DayStart(start.AddDate(0, 0, i)).UnixNano()
		}
	}
	return weekStart
}
