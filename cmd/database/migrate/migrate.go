package migration

import (
	"fmt"
	"log"

	"github.com/TimSparing/Food-Tracker/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.BasicFood{}); err != nil {
		log.Fatalf("Error migrating basic food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CompositeFood{}); err != nil {
		log.Fatalf("Error migrating composite food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DailyRecord{}); err != nil {
		log.Fatalf("Error migrating daily record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Settings{}); err != nil {
		log.Fatalf("Error migrating settings database: %v", err)
		return err
	}

	// Seed the settings singleton on first run.
	var count int64
	if err := db.Model(&entities.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		defaults := entities.DefaultSettings()
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
