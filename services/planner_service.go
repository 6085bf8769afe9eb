package services

import (
	"errors"
	"time"

	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
	"github.com/aselzhanova/FitJourneyBackend/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The planner keeps two denormalized views consistent: the weekly plan
// (what was scheduled) and the per-day checklists (what got done). Every
// operation that touches both runs in a single transaction so readers
// never observe a half-updated pair.

// GetWeeklyPlans returns the caller's plan rows in store order.
func GetWeeklyPlans(userID uint) ([]models.WeeklyExercisePlan, error) {
	var plans []models.WeeklyExercisePlan
	if err := db.DB.Where("user_id = ?", userID).Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// GetDailyChecklists returns one canonical checklist per weekday tag, in
// Sunday-first order. Older rows for the same tag are retained in the
// store but never surfaced.
func GetDailyChecklists(userID uint) ([]models.DailyChecklist, error) {
	var rows []models.DailyChecklist
	if err := db.DB.Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[models.DayOfWeek]models.DailyChecklist, 7)
	for _, row := range rows {
		current, ok := byDay[row.Day]
		if !ok || row.Date > current.Date || (row.Date == current.Date && row.ID > current.ID) {
			byDay[row.Day] = row
		}
	}

	out := make([]models.DailyChecklist, 0, len(byDay))
	for _, day := range models.WeekDays {
		if row, ok := byDay[day]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// UpsertWeek replaces the canonical plan row for plan.WeekStartDate and
// merges the plan's daily category lists into the matching checklist
// rows. Exercises already present (exact text and category) keep their
// completion state; new ones are appended uncompleted. Re-submitting the
// identical plan is a no-op on checklist state.
func UpsertWeek(userID uint, plan models.WeeklyExercisePlan) error {
	if plan.WeekStartDate == 0 {
		return ErrInvalidInput
	}
	for i := range plan.DailyPlans {
		if !plan.DailyPlans[i].Day.Valid() {
			return ErrInvalidInput
		}
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND week_start_date = ?", userID, plan.WeekStartDate).
			Delete(&models.WeeklyExercisePlan{}).Error; err != nil {
			return err
		}

		row := models.WeeklyExercisePlan{
			UserID:        userID,
			WeekStartDate: plan.WeekStartDate,
			DailyPlans:    plan.DailyPlans,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for i := range plan.DailyPlans {
			if err := mergeDayIntoChecklist(tx, userID, plan.WeekStartDate, &plan.DailyPlans[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.Logger.Info("plan_upserted",
		zap.Uint("user_id", userID),
		zap.Int64("week_start", plan.WeekStartDate),
	)
	return nil
}

func mergeDayIntoChecklist(tx *gorm.DB, userID uint, weekStart int64, dayPlan *models.DailyPlan) error {
	date := utils.DateOfWeekday(weekStart, dayPlan.Day)

	var row models.DailyChecklist
	err := tx.Where("user_id = ? AND day = ? AND date = ?", userID, dayPlan.Day, date).
		Order("id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.DailyChecklist{UserID: userID, Day: dayPlan.Day, Date: date}
	} else if err != nil {
		return err
	}

	for _, cat := range models.Categories {
		planned, err := dayPlan.CategoryList(cat)
		if err != nil {
			return err
		}
		existing, err := row.CategoryList(cat)
		if err != nil {
			return err
		}
		for _, entry := range *planned {
			if !containsExercise(*existing, entry.Exercise) {
				*existing = append(*existing, models.ExerciseEntry{
					Exercise: entry.Exercise,
					Planned:  true,
				})
			}
		}
	}

	return tx.Save(&row).Error
}

func containsExercise(list models.ExerciseList, name string) bool {
	for _, e := range list {
		if e.Exercise == name {
			return true
		}
	}
	return false
}

// DeleteWeeklyPlan removes the plan rows for one week. Historical
// checklist rows are left alone; clearing those is DeleteCurrentWeek's
// job.
func DeleteWeeklyPlan(userID uint, weekStart int64) error {
	res := db.DB.Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		Delete(&models.WeeklyExercisePlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	utils.Logger.Info("plan_deleted",
		zap.Uint("user_id", userID),
		zap.Int64("week_start", weekStart),
	)
	return nil
}

// ToggleCompletion flips a checklist entry. The plan is schedule-only and
// never carries completion state, so it is not touched.
func ToggleCompletion(userID uint, day models.DayOfWeek, cat models.ExerciseCategory, index int) error {
	if !day.Valid() || !cat.Valid() {
		return ErrInvalidInput
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		row, err := canonicalChecklist(tx, userID, day)
		if err != nil {
			return err
		}
		list, err := row.CategoryList(cat)
		if err != nil {
			return ErrInvalidInput
		}
		if index < 0 || index >= len(*list) {
			return ErrInvalidIndex
		}
		(*list)[index].Completed = !(*list)[index].Completed
		return tx.Save(row).Error
	})
}

// DeleteExerciseFromChecklist removes one entry from the canonical
// checklist only. The plan keeps its scheduled entry.
func DeleteExerciseFromChecklist(userID uint, day models.DayOfWeek, cat models.ExerciseCategory, index int) error {
	if !day.Valid() || !cat.Valid() {
		return ErrInvalidInput
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		row, err := canonicalChecklist(tx, userID, day)
		if err != nil {
			return err
		}
		list, err := row.CategoryList(cat)
		if err != nil {
			return ErrInvalidInput
		}
		if index < 0 || index >= len(*list) {
			return ErrInvalidIndex
		}
		*list = append((*list)[:index], (*list)[index+1:]...)
		return tx.Save(row).Error
	})
}

// DeleteExerciseFromPlanner removes the entry from both the plan and the
// canonical checklist in one transaction: both removals happen or
// neither does.
func DeleteExerciseFromPlanner(userID uint, weekStart int64, day models.DayOfWeek, cat models.ExerciseCategory, index int) error {
	if !day.Valid() || !cat.Valid() {
		return ErrInvalidInput
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.WeeklyExercisePlan
		err := tx.Where("user_id = ? AND week_start_date = ?", userID, weekStart).
			Order("id DESC").First(&plan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		dayPlan := plan.DayPlan(day)
		if dayPlan == nil {
			return ErrInvalidIndex
		}
		planList, err := dayPlan.CategoryList(cat)
		if err != nil {
			return ErrInvalidInput
		}
		if index < 0 || index >= len(*planList) {
			return ErrInvalidIndex
		}
		*planList = append((*planList)[:index], (*planList)[index+1:]...)
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		row, err := canonicalChecklist(tx, userID, day)
		if err != nil {
			return err
		}
		checkList, err := row.CategoryList(cat)
		if err != nil {
			return ErrInvalidInput
		}
		if index >= len(*checkList) {
			return ErrInvalidIndex
		}
		*checkList = append((*checkList)[:index], (*checkList)[index+1:]...)
		return tx.Save(row).Error
	})
}

// DeleteCurrentWeek removes the plan for the week containing now and
// every checklist row dated inside that week. Safe to repeat: a second
// call finds nothing to delete.
func DeleteCurrentWeek(userID uint, now time.Time) error {
	weekStart := utils.WeekStartNanos(now)
	weekEnd := utils.WeekStart(now).AddDate(0, 0, 7).UnixNano()

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND week_start_date = ?", userID, weekStart).
			Delete(&models.WeeklyExercisePlan{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND date >= ? AND date < ?", userID, weekStart, weekEnd).
			Delete(&models.DailyChecklist{}).Error
	})
	if err != nil {
		return err
	}

	utils.Logger.Info("current_week_deleted",
		zap.Uint("user_id", userID),
		zap.Int64("week_start", weekStart),
	)
	return nil
}

func canonicalChecklist(tx *gorm.DB, userID uint, day models.DayOfWeek) (*models.DailyChecklist, error) {
	var row models.DailyChecklist
	err := tx.Where("user_id = ? AND day = ?", userID, day).
		Order("date DESC, id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &row, nil
}
