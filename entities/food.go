package entities

import (
	"github.com/google/uuid"
)

// BasicFood is a catalog entry with directly entered nutrition facts.
type BasicFood struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	CaloriesPer100g float64   `json:"calories_per_100g"`
	ProteinPer100g  float64   `json:"protein_per_100g"`

	Timestamp
}

func (BasicFood) TableName() string { return "basic_food" }

// CompositeFood stores its ingredient list alongside per-100g values derived
// from it at save time. The derived values are a snapshot of the ingredients'
// values as of the last save; editing an ingredient food afterwards does not
// change them.
type CompositeFood struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	Ingredients     string    `gorm:"type:text" json:"ingredients"` // name,qty;name,qty
	CaloriesPer100g float64   `json:"calories_per_100g"`
	ProteinPer100g  float64   `json:"protein_per_100g"`

	Timestamp
}

func (CompositeFood) TableName() string { return "composite_food" }
