package models

import (
	"fmt"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

const (
	StyleGentle   = "gentle"
	StyleDirect   = "direct"
	StyleBalanced = "balanced"
)

const (
	MessageDaily   = "daily"
	MessageWeekly  = "weekly"
	MessageMonthly = "monthly"
)

// DayOfWeek is the closed 7-value weekday tag used by plans and checklists.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// WeekDays is the canonical ordering, Sunday first (week start).
var WeekDays = []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d DayOfWeek) Valid() bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// DayTag maps a Go weekday to its tag.
func DayTag(wd time.Weekday) DayOfWeek {
	return WeekDays[int(wd)]
}

// ExerciseCategory is the closed 4-value category set.
type ExerciseCategory string

const (
	Resistance ExerciseCategory = "resistance"
	Cardio     ExerciseCategory = "cardio"
	Core       ExerciseCategory = "core"
	Stretching ExerciseCategory = "stretching"
)

var Categories = []ExerciseCategory{Resistance, Cardio, Core, Stretching}

func (c ExerciseCategory) Valid() bool {
	switch c {
	case Resistance, Cardio, Core, Stretching:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique" json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `gorm:"default:guest" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserProfile is saved wholesale by its owner; admins may read (not write)
// other users' profiles.
type UserProfile struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	UserID            uint   `gorm:"uniqueIndex" json:"user_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	MotivationalStyle string `gorm:"default:balanced" json:"motivational_style"`
	ShareProgress     bool   `json:"share_progress"`
}

// Timestamps are nanoseconds since the Unix epoch throughout.

type WeightRecord struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	UserID uint    `gorm:"index" json:"user_id"`
	Date   int64   `json:"date"`
	Weight float64 `json:"weight"`
}

type CalorieEntry struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	UserID   uint  `gorm:"index" json:"user_id"`
	Date     int64 `json:"date"`
	Calories int64 `json:"calories"`
}

type BurnedCalorieEntry struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	UserID         uint  `gorm:"index" json:"user_id"`
	Date           int64 `json:"date"`
	CaloriesBurned int64 `json:"calories_burned"`
}

type BodyMeasurements struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	UserID uint    `gorm:"index" json:"user_id"`
	Date   int64   `json:"date"`
	Bust   float64 `json:"bust"`
	Arms   float64 `json:"arms"`
	Hips   float64 `json:"hips"`
	Legs   float64 `json:"legs"`
}

type MoodEnergyLog struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"index" json:"user_id"`
	Date   int64 `json:"date"`
	Mood   int   `json:"mood"`
	Energy int   `json:"energy"`
}

type MotivationalMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index" json:"user_id"`
	Date    int64  `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ProgressPhoto struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index" json:"user_id"`
	FilePath    string `json:"file_path"`
	UploadDate  int64  `json:"upload_date"`
	Description string `json:"description"`
}

type ProgressSummary struct {
	ID                   uint    `gorm:"primaryKey" json:"id"`
	UserID               uint    `gorm:"index" json:"user_id"`
	Date                 int64   `json:"date"`
	ExerciseConsistency  float64 `json:"exercise_consistency"`
	WeightLossPercentage float64 `json:"weight_loss_percentage"`
	MeasurementChanges   float64 `json:"measurement_changes"`
}

// FileReference is content-addressing metadata for uploaded assets,
// independent of the exercise data model.
type FileReference struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index" json:"user_id"`
	Path   string `gorm:"index" json:"path"`
	Hash   string `json:"hash"`
}

// ExerciseEntry has positional identity only: it is addressed by its
// index within a category list, never by a stable ID.
type ExerciseEntry struct {
	Exercise  string `json:"exercise"`
	Planned   bool   `json:"planned"`
	Completed bool   `json:"completed"`
}

// ExerciseList is stored as a JSON column so list order survives round-trips.
type ExerciseList []ExerciseEntry

type DailyPlan struct {
	Day        DayOfWeek    `json:"day"`
	Resistance ExerciseList `json:"resistance"`
	Cardio     ExerciseList `json:"cardio"`
	Core       ExerciseList `json:"core"`
	Stretching ExerciseList `json:"stretching"`
}

// CategoryList returns the addressed category list, keeping category
// selection exhaustive instead of stringly-indexed.
func (p *DailyPlan) CategoryList(cat ExerciseCategory) (*ExerciseList, error) {
	switch cat {
	case Resistance:
		return &p.Resistance, nil
	case Cardio:
		return &p.Cardio, nil
	case Core:
		return &p.Core, nil
	case Stretching:
		return &p.Stretching, nil
	}
	return nil, fmt.Errorf("unknown exercise category %q", cat)
}

type DailyPlanList []DailyPlan

type WeeklyExercisePlan struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"index" json:"user_id"`
	WeekStartDate int64         `gorm:"index" json:"week_start_date"`
	DailyPlans    DailyPlanList `gorm:"serializer:json" json:"daily_plans"`
}

// DayPlan returns the plan's entry for one weekday tag.
func (w *WeeklyExercisePlan) DayPlan(day DayOfWeek) *DailyPlan {
	for i := range w.DailyPlans {
		if w.DailyPlans[i].Day == day {
			return &w.DailyPlans[i]
		}
	}
	return nil
}

// DailyChecklist is the completion-tracking record for one weekday tag on
// one calendar date. Several rows may exist per day tag; the max-date row
// is the canonical one.
type DailyChecklist struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	UserID     uint         `gorm:"index" json:"user_id"`
	Day        DayOfWeek    `json:"day"`
	Date       int64        `json:"date"`
	Resistance ExerciseList `gorm:"serializer:json" json:"resistance"`
	Cardio     ExerciseList `gorm:"serializer:json" json:"cardio"`
	Core       ExerciseList `gorm:"serializer:json" json:"core"`
	Stretching ExerciseList `gorm:"serializer:json" json:"stretching"`
}

func (c *DailyChecklist) CategoryList(cat ExerciseCategory) (*ExerciseList, error) {
	switch cat {
	case Resistance:
		return &c.Resistance, nil
	case Cardio:
		return &c.Cardio, nil
	case Core:
		return &c.Core, nil
	case Stretching:
		return &c.Stretching, nil
	}
	return nil, fmt.Errorf("unknown exercise category %q", cat)
}

// Empty reports whether no category holds any entry.
func (c *DailyChecklist) Empty() bool {
	return len(c.Resistance) == 0 && len(c.Cardio) == 0 && len(c.Core) == 0 && len(c.Stretching) == 0
}

// MotivationalSaying is shared seed content, not per-user data. Style
// selects which voice the rotation draws from.
type MotivationalSaying struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Style   string `gorm:"index" json:"style"`
	Message string `json:"message"`
	Author  string `json:"author"`
}

// StreakRecord keeps the historical max streak per user so that
// max_streak never drops below any previously observed current streak.
type StreakRecord struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"uniqueIndex" json:"user_id"`
	MaxStreak int  `json:"max_streak"`
}
