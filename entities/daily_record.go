package entities

import (
	"github.com/google/uuid"
)

// DailyRecord holds everything logged for one calendar date. Weight is a
// pointer so a day without a weigh-in stays distinguishable from weight 0.
// FoodConsumed and Exercises carry pair lists in the legacy wire format
// (see pairs.go); dates are YYYY-MM-DD strings so lexicographic order is
// chronological order.
type DailyRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date         string    `gorm:"uniqueIndex;not null" json:"date"`
	Weight       *float64  `json:"weight"`
	FoodConsumed string    `gorm:"type:text" json:"food_consumed"`
	Exercises    string    `gorm:"type:text" json:"exercises"`

	Timestamp
}

func (DailyRecord) TableName() string { return "daily_data" }
