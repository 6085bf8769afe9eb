package services

import (
	"errors"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"gorm.io/gorm"
)

// Derived views. Nothing here is stored (except the max-streak high
// watermark): totals are recomputed from current checklist state on
// every read, so they self-correct after any planner mutation.

type ExerciseProgress struct {
	Day                 models.DayOfWeek `json:"day"`
	ResistanceCompleted int              `json:"resistance_completed"`
	CardioCompleted     int              `json:"cardio_completed"`
	CoreCompleted       int              `json:"core_completed"`
	StretchingCompleted int              `json:"stretching_completed"`
}

type ProgressData struct {
	WeeklyProgress           []ExerciseProgress `json:"weekly_progress"`
	TotalCompletedExercises  int                `json:"total_completed_exercises"`
	TotalResistanceCompleted int                `json:"total_resistance_completed"`
	TotalCardioCompleted     int                `json:"total_cardio_completed"`
	TotalCoreCompleted       int                `json:"total_core_completed"`
	TotalStretchingCompleted int                `json:"total_stretching_completed"`
}

type StreakData struct {
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`
}

type BurnedCalorieSummary struct {
	DailyTotal   int64                       `json:"daily_total"`
	DailyEntries []models.BurnedCalorieEntry `json:"daily_entries"`
}

type DayInfo struct {
	DayOfWeek models.DayOfWeek `json:"day_of_week"`
	FullDate  string           `json:"full_date"`
}

func completedCount(list models.ExerciseList) int {
	n := 0
	for _, e := range list {
		if e.Completed {
			n++
		}
	}
	return n
}

func plannedCount(list models.ExerciseList) int {
	n := 0
	for _, e := range list {
		if e.Planned {
			n++
		}
	}
	return n
}

// ComputeProgressData sums completed entries per category across each
// weekday's canonical checklist. Empty input yields a zero-valued
// structure, never an error.
func ComputeProgressData(userID uint) (*ProgressData, error) {
	checklists, err := GetDailyChecklists(userID)
	if err != nil {
		return nil, err
	}

	data := &ProgressData{WeeklyProgress: []ExerciseProgress{}}
	for _, row := range checklists {
		p := ExerciseProgress{
			Day:                 row.Day,
			ResistanceCompleted: completedCount(row.Resistance),
			CardioCompleted:     completedCount(row.Cardio),
			CoreCompleted:       completedCount(row.Core),
			StretchingCompleted: completedCount(row.Stretching),
		}
		data.WeeklyProgress = append(data.WeeklyProgress, p)
		data.TotalResistanceCompleted += p.ResistanceCompleted
		data.TotalCardioCompleted += p.CardioCompleted
		data.TotalCoreCompleted += p.CoreCompleted
		data.TotalStretchingCompleted += p.StretchingCompleted
	}
	data.TotalCompletedExercises = data.TotalResistanceCompleted +
		data.TotalCardioCompleted + data.TotalCoreCompleted + data.TotalStretchingCompleted
	return data, nil
}

// ComputeStreakData walks backward from today over at most 7 calendar
// days. A day counts when its canonical checklist has at least one
// planned and one completed entry. Days without any checklist are
// skipped; a day with planned but zero completed entries breaks the
// walk. Today absent or uncompleted means a current streak of zero.
func ComputeStreakData(userID uint, now time.Time) (*StreakData, error) {
	checklists, err := GetDailyChecklists(userID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[int64]models.DailyChecklist, len(checklists))
	for _, row := range checklists {
		byDate[row.Date] = row
	}

	today := utils.DayStart(now)
	current := 0
	for offset := 0; offset < 7; offset++ {
		date := today.AddDate(0, 0, -offset).UnixNano()
		row, ok := byDate[date]
		if !ok {
			if offset == 0 {
				break // no checklist today, streak is zero
			}
			continue // gap day, skip without breaking
		}

		planned := plannedCount(row.Resistance) + plannedCount(row.Cardio) +
			plannedCount(row.Core) + plannedCount(row.Stretching)
		completed := completedCount(row.Resistance) + completedCount(row.Cardio) +
			completedCount(row.Core) + completedCount(row.Stretching)

		if planned > 0 && completed > 0 {
			current++
			continue
		}
		break
	}

	max, err := raiseMaxStreak(userID, current)
	if err != nil {
		return nil, err
	}
	return &StreakData{CurrentStreak: current, MaxStreak: max}, nil
}

// raiseMaxStreak keeps the per-user high watermark monotonic, so
// max_streak >= current_streak holds for every history.
func raiseMaxStreak(userID uint, current int) (int, error) {
	var rec models.StreakRecord
	err := db.DB.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.StreakRecord{UserID: userID, MaxStreak: current}
		if err := db.DB.Create(&rec).Error; err != nil {
			return 0, err
		}
		return rec.MaxStreak, nil
	} else if err != nil {
		return 0, err
	}

	if current > rec.MaxStreak {
		rec.MaxStreak = current
		if err := db.DB.Save(&rec).Error; err != nil {
			return 0, err
		}
	}
	return rec.MaxStreak, nil
}

// ComputeBurnedCalorieSummary totals the caller's burned-calorie entries
// dated within the current local day.
func ComputeBurnedCalorieSummary(userID uint, now time.Time) (*BurnedCalorieSummary, error) {
	dayStart := utils.DayStart(now).UnixNano()
	dayEnd := utils.DayStart(now).AddDate(0, 0, 1).UnixNano()

	var entries []models.BurnedCalorieEntry
	if err := db.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}

	summary := &BurnedCalorieSummary{DailyEntries: entries}
	if summary.DailyEntries == nil {
		summary.DailyEntries = []models.BurnedCalorieEntry{}
	}
	for _, e := range entries {
		summary.DailyTotal += e.CaloriesBurned
	}
	return summary, nil
}

// CurrentDayInfo reports today's weekday tag and formatted date.
func CurrentDayInfo(now time.Time) DayInfo {
	return DayInfo{
		DayOfWeek: models.DayTag(now.Weekday()),
		FullDate:  now.Format("Monday, January 2, 2006"),
	}
}
