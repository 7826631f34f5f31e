package config

import (
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DatabaseURL  string
	OpenAIAPIKey string
	Port         string
}

// Load reads configuration from .env / the environment. A missing value
// makes the corresponding collaborator fail at call time rather than
// blocking startup of the rest of the app.
func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, database connection will fail")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, image analysis will fail")
	}
	return cfg
}

// InitDB opens the Postgres connection and migrates the schema. Called
// once at startup; the returned handle is injected into the services and
// never reassigned.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.FoodEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}
