package main

import (
	"context"
	"log"
	"os"

	"invest/migrations"
	"invest/src/config"
	"invest/src/database"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Error loading config for environment: %v", err)
	}

	sqlCfg, err := database.ResolveSQLConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to resolve database credentials: %v", err)
	}

	db, err := gorm.Open(postgres.Open(database.BuildDSN(sqlCfg)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB from GORM DB: %v", err)
	}
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	version, err := migrations.Version(sqlDB)
	if err != nil {
		log.Fatalf("Failed to read migration version: %v", err)
	}
	log.Println("Database migration completed successfully, version", version)
}
