package config

import (
	"fmt"
	"log"
	"os"

	"glucolog/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.GlucoseReading{},
		&models.MealEntry{},
		&models.MealItem{},
		&models.FoodAnalysis{},
		&models.AdvisoryAnalysis{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// The matcher's term search needs a full-text index over food names.
	if err := DB.Exec(
		`CREATE INDEX IF NOT EXISTS idx_foods_name_fts ON foods USING gin (to_tsvector('simple', name))`,
	).Error; err != nil {
		log.Printf("Could not create food name full-text index: %v", err)
	}
}
