// services/ledger_service.go
package services

import (
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const defaultDescription = "No description available"

// LedgerService is the day-scoped view over the food_entries table.
// "Today" is always the half-open interval [local midnight, midnight+24h)
// computed from the clock at query time, so two calls straddling midnight
// see different windows.
type LedgerService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db, now: time.Now}
}

// EntryCandidate is the write-path input. Calories and Timestamp are
// pointers so an absent field is distinguishable from a zero one.
type EntryCandidate struct {
	FoodName    string     `json:"foodName"`
	Calories    *float64   `json:"calories"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	Timestamp   *time.Time `json:"timestamp"`
}

// SaveEntry validates the candidate, stamps a missing timestamp with the
// current instant, and persists it. The returned entry carries the
// generated id and the resolved timestamp.
func (s *LedgerService) SaveEntry(candidate EntryCandidate) (*models.FoodEntry, error) {
	if strings.TrimSpace(candidate.FoodName) == "" {
		return nil, &ValidationError{Msg: "Food name and calories are required"}
	}
	if candidate.Calories == nil || *candidate.Calories < 0 {
		return nil, &ValidationError{Msg: "Food name and calories are required"}
	}

	entry := models.FoodEntry{
		FoodName:    candidate.FoodName,
		Calories:    *candidate.Calories,
		Description: candidate.Description,
		ImageURL:    candidate.ImageURL,
	}
	if entry.Description == "" {
		entry.Description = defaultDescription
	}
	if candidate.Timestamp != nil {
		entry.Timestamp = *candidate.Timestamp
	} else {
		entry.Timestamp = s.now()
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, &StoreError{Op: "insert", Err: err}
	}
	return &entry, nil
}

// TodayEntries returns today's entries, most recent first.
func (s *LedgerService) TodayEntries() ([]models.FoodEntry, error) {
	start, end := s.todayWindow()
	var entries []models.FoodEntry
	err := s.db.
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, &StoreError{Op: "select", Err: err}
	}
	return entries, nil
}

// TodayTotal sums calories over today's entries. It is a fresh read, not
// a stored aggregate, so it always matches the current entry set.
func (s *LedgerService) TodayTotal() (float64, error) {
	entries, err := s.TodayEntries()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.Calories
	}
	return total, nil
}

// DeleteToday removes every entry in today's window. Deleting an empty
// day is a no-op, not an error.
func (s *LedgerService) DeleteToday() error {
	start, end := s.todayWindow()
	err := s.db.
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Delete(&models.FoodEntry{}).Error
	if err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

// AllEntries returns every entry regardless of day, same ordering as
// TodayEntries. Kept for the all-time history view.
func (s *LedgerService) AllEntries() ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, &StoreError{Op: "select", Err: err}
	}
	return entries, nil
}

// todayWindow recomputes the day boundary from the wall clock on every
// call; it must never be cached or derived from entry timestamps.
func (s *LedgerService) todayWindow() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}
