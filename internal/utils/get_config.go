package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	AppPort    string  `yaml:"APP_PORT"`
	DBPath     string  `yaml:"DB_PATH"`
	LogDir     string  `yaml:"LOG_DIR"`
	GoalWeight float64 `yaml:"GOAL_WEIGHT"`
}

var config = Config{
	AppPort:    "8080",
	DBPath:     "database.db",
	LogDir:     "logs",
	GoalWeight: 75,
}

// LoadConfig reads config.yaml over the built-in defaults, then lets
// environment variables (including a .env file, if present) win.
func LoadConfig() {
	_ = godotenv.Load()

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if v := os.Getenv("APP_PORT"); v != "" {
		config.AppPort = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		config.DBPath = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		config.LogDir = v
	}
	if v := os.Getenv("GOAL_WEIGHT"); v != "" {
		goal, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("Ignoring invalid GOAL_WEIGHT %q: %s\n", v, err)
		} else {
			config.GoalWeight = goal
		}
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DB_PATH":
		return config.DBPath
	case "LOG_DIR":
		return config.LogDir
	default:
		return ""
	}
}

func GoalWeight() float64 {
	return config.GoalWeight
}
