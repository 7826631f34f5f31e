package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One logged food item with its calorie estimate.
// Entries are append-only: no update path exists, and rows are only
// removed by the day-scoped bulk delete.
type FoodEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FoodName    string    `gorm:"column:food_name;not null" json:"foodName"`
	Calories    float64   `gorm:"not null" json:"calories"`
	Description string    `json:"description"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
}

func (FoodEntry) TableName() string { return "food_entries" }

func (e *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
