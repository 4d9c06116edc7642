package routes

import (
	"github.com/TimSparing/Food-Tracker/internal/api/handlers"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	CatalogHandler  handlers.CatalogHandler
	DiaryHandler    handlers.DiaryHandler
	TrendHandler    handlers.TrendHandler
	SettingsHandler handlers.SettingsHandler
}

func (c *Config) Setup() {
	c.Ping()
	c.Foods()
	c.Days()
	c.Trend()
	c.Settings()
}

func (c *Config) Ping() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods")
	{
		foods.Get("", c.CatalogHandler.ListFoodNames)
		foods.Post("/basic", c.CatalogHandler.AddBasicFood)
		foods.Post("/composite", c.CatalogHandler.AddCompositeFood)
		foods.Patch("/basic/:name", c.CatalogHandler.UpdateBasicFood)
		foods.Patch("/composite/:name", c.CatalogHandler.UpdateCompositeFood)
		foods.Get("/:name/quantity", c.CatalogHandler.QuantityForCalories)
		foods.Get("/:name", c.CatalogHandler.LookupFood)
	}

	c.App.Get("/api/v1/exercises", c.DiaryHandler.ListExercisePresets)
}

func (c *Config) Days() {
	days := c.App.Group("/api/v1/days")
	{
		days.Get("", c.DiaryHandler.ListDays)
		days.Get("/:date/summary", c.DiaryHandler.DaySummary)
		days.Get("/:date", c.DiaryHandler.GetDay)
		days.Put("/:date/weight", c.DiaryHandler.UpsertWeight)
		days.Put("/:date", c.DiaryHandler.ReplaceDay)
		days.Post("/:date/foods", c.DiaryHandler.AppendFood)
		days.Post("/:date/exercises", c.DiaryHandler.AppendExercise)
	}
}

func (c *Config) Trend() {
	trend := c.App.Group("/api/v1/trend")
	{
		trend.Get("/history", c.TrendHandler.GetHistory)
		trend.Get("/chart", c.TrendHandler.GetChart)
		trend.Get("/ticks", c.TrendHandler.GetTicks)
	}
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings")
	{
		settings.Get("", c.SettingsHandler.GetSettings)
		settings.Put("", c.SettingsHandler.UpdateSettings)
	}
}
