package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/TimSparing/Food-Tracker/internal/api/handlers"
	"github.com/TimSparing/Food-Tracker/internal/api/routes"
	"github.com/TimSparing/Food-Tracker/internal/utils"
	"github.com/TimSparing/Food-Tracker/pkg/catalog"
	"github.com/TimSparing/Food-Tracker/pkg/diary"
	applog "github.com/TimSparing/Food-Tracker/pkg/logger"
	"github.com/TimSparing/Food-Tracker/pkg/settings"
	"github.com/TimSparing/Food-Tracker/pkg/trend"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "access.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	appLogger := applog.New("tracker", logDir)

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)
	diaryRepository := diary.NewDiaryRepository(db)
	settingsRepository := settings.NewSettingsRepository(db)

	// Service
	catalogService := catalog.NewCatalogService(catalogRepository)
	diaryService := diary.NewDiaryService(diaryRepository, catalogService, appLogger)
	trendService := trend.NewTrendService(diaryService, utils.GoalWeight())
	settingsService := settings.NewSettingsService(settingsRepository)

	// Handler
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	diaryHandler := handlers.NewDiaryHandler(diaryService, validator)
	trendHandler := handlers.NewTrendHandler(trendService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		CatalogHandler:  catalogHandler,
		DiaryHandler:    diaryHandler,
		TrendHandler:    trendHandler,
		SettingsHandler: settingsHandler,
	}
	routesConfig.Setup()
	return app, nil
}
