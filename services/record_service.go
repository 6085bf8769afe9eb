package services

import (
	"github.com/aselzhanova/FitJourneyBackend/db"
	"github.com/aselzhanova/FitJourneyBackend/models"
)

// Index-addressed updates for the simple value-record collections.
// Collections are insertion-ordered by primary key; the index an update
// names is the position within the caller's collection, validated
// against current length so an out-of-range write fails instead of
// corrupting a neighbour.

func nthRecordID(model interface{}, userID uint, index int) (uint, error) {
	if index < 0 {
		return 0, ErrInvalidIndex
	}
	var ids []uint
	if err := db.DB.Model(model).Where("user_id = ?", userID).Order("id").
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if index >= len(ids) {
		return 0, ErrInvalidIndex
	}
	return ids[index], nil
}

func AddWeightRecord(userID uint, rec models.WeightRecord) error {
	if rec.Weight <= 0 {
		return ErrInvalidInput
	}
	rec.ID = 0
	rec.UserID = userID
	return db.DB.Create(&rec).Error
}

func GetWeightRecords(userID uint) ([]models.WeightRecord, error) {
	var out []models.WeightRecord
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func UpdateWeightRecord(userID uint, index int, rec models.WeightRecord) error {
	if rec.Weight <= 0 {
		return ErrInvalidInput
	}
	id, err := nthRecordID(&models.WeightRecord{}, userID, index)
	if err != nil {
		return err
	}
	rec.ID = id
	rec.UserID = userID
	return db.DB.Save(&rec).Error
}

func AddCalorieEntry(userID uint, entry models.CalorieEntry) error {
	if entry.Calories <= 0 {
		return ErrInvalidInput
	}
	entry.ID = 0
	entry.UserID = userID
	return db.DB.Create(&entry).Error
}

func GetCalorieEntries(userID uint) ([]models.CalorieEntry, error) {
	var out []models.CalorieEntry
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func UpdateCalorieEntry(userID uint, index int, entry models.CalorieEntry) error {
	if entry.Calories <= 0 {
		return ErrInvalidInput
	}
	id, err := nthRecordID(&models.CalorieEntry{}, userID, index)
	if err != nil {
		return err
	}
	entry.ID = id
	entry.UserID = userID
	return db.DB.Save(&entry).Error
}

func AddBurnedCalorieEntry(userID uint, entry models.BurnedCalorieEntry) error {
	if entry.CaloriesBurned <= 0 {
		return ErrInvalidInput
	}
	entry.ID = 0
	entry.UserID = userID
	return db.DB.Create(&entry).Error
}

func GetBurnedCalorieEntries(userID uint) ([]models.BurnedCalorieEntry, error) {
	var out []models.BurnedCalorieEntry
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func UpdateBurnedCalorieEntry(userID uint, index int, entry models.BurnedCalorieEntry) error {
	if entry.CaloriesBurned <= 0 {
		return ErrInvalidInput
	}
	id, err := nthRecordID(&models.BurnedCalorieEntry{}, userID, index)
	if err != nil {
		return err
	}
	entry.ID = id
	entry.UserID = userID
	return db.DB.Save(&entry).Error
}

func AddBodyMeasurement(userID uint, m models.BodyMeasurements) error {
	if m.Bust <= 0 || m.Arms <= 0 || m.Hips <= 0 || m.Legs <= 0 {
		return ErrInvalidInput
	}
	m.ID = 0
	m.UserID = userID
	return db.DB.Create(&m).Error
}

func GetBodyMeasurements(userID uint) ([]models.BodyMeasurements, error) {
	var out []models.BodyMeasurements
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func UpdateBodyMeasurement(userID uint, index int, m models.BodyMeasurements) error {
	if m.Bust <= 0 || m.Arms <= 0 || m.Hips <= 0 || m.Legs <= 0 {
		return ErrInvalidInput
	}
	id, err := nthRecordID(&models.BodyMeasurements{}, userID, index)
	if err != nil {
		return err
	}
	m.ID = id
	m.UserID = userID
	return db.DB.Save(&m).Error
}

func AddMoodEnergyLog(userID uint, log models.MoodEnergyLog) error {
	if log.Mood < 1 || log.Mood > 10 || log.Energy < 1 || log.Energy > 10 {
		return ErrInvalidInput
	}
	log.ID = 0
	log.UserID = userID
	return db.DB.Create(&log).Error
}

func GetMoodEnergyLogs(userID uint) ([]models.MoodEnergyLog, error) {
	var out []models.MoodEnergyLog
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func AddProgressSummary(userID uint, s models.ProgressSummary) error {
	s.ID = 0
	s.UserID = userID
	return db.DB.Create(&s).Error
}

func GetProgressSummaries(userID uint) ([]models.ProgressSummary, error) {
	var out []models.ProgressSummary
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func AddProgressPhoto(userID uint, p models.ProgressPhoto) error {
	if p.FilePath == "" {
		return ErrInvalidInput
	}
	p.ID = 0
	p.UserID = userID
	return db.DB.Create(&p).Error
}

func GetProgressPhotos(userID uint) ([]models.ProgressPhoto, error) {
	var out []models.ProgressPhoto
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

// DeleteProgressPhoto is addressed by the photo's file path, its natural
// key, rather than by index.
func DeleteProgressPhoto(userID uint, filePath string) error {
	res := db.DB.Where("user_id = ? AND file_path = ?", userID, filePath).
		Delete(&models.ProgressPhoto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func RegisterFileReference(userID uint, path, hash string) error {
	if path == "" || hash == "" {
		return ErrInvalidInput
	}
	// Re-registering a path overwrites its hash.
	var ref models.FileReference
	err := db.DB.Where("user_id = ? AND path = ?", userID, path).First(&ref).Error
	if err == nil {
		ref.Hash = hash
		return db.DB.Save(&ref).Error
	}
	ref = models.FileReference{UserID: userID, Path: path, Hash: hash}
	return db.DB.Create(&ref).Error
}

func GetFileReference(userID uint, path string) (*models.FileReference, error) {
	var ref models.FileReference
	err := db.DB.Where("user_id = ? AND path = ?", userID, path).First(&ref).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &ref, nil
}

func ListFileReferences(userID uint) ([]models.FileReference, error) {
	var out []models.FileReference
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func DropFileReference(userID uint, path string) error {
	res := db.DB.Where("user_id = ? AND path = ?", userID, path).
		Delete(&models.FileReference{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func AddMotivationalMessage(userID uint, m models.MotivationalMessage) error {
	switch m.Type {
	case models.MessageDaily, models.MessageWeekly, models.MessageMonthly:
	default:
		return ErrInvalidInput
	}
	m.ID = 0
	m.UserID = userID
	return db.DB.Create(&m).Error
}

func GetMotivationalMessages(userID uint) ([]models.MotivationalMessage, error) {
	var out []models.MotivationalMessage
	err := db.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}
