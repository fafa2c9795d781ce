package main

import (
	"log"

	"classroom-portal-backend/internal/config"
	"classroom-portal-backend/internal/database"
	"classroom-portal-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to access database handle:", err)
	}
	defer sqlDB.Close()

	logrus.WithField("environment", cfg.Environment).Info("Schema migration completed")
}
