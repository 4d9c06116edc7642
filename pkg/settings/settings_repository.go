package settings

import (
	"context"
	"errors"

	"github.com/TimSparing/Food-Tracker/entities"
	"gorm.io/gorm"
)

type (
	SettingsRepository interface {
		Get(ctx context.Context) (*entities.Settings, error)
		Save(ctx context.Context, settings *entities.Settings) error
	}

	settingsRepository struct {
		db *gorm.DB
	}
)

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton row, creating it with defaults if the table is
// still empty.
func (r *settingsRepository) Get(ctx context.Context) (*entities.Settings, error) {
	var settings entities.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entities.DefaultSettings()
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entities.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
