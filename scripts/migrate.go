package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connecting runs the migrations for both SQL drivers
	var db *gorm.DB
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err = storage.ConnectSQLite(cfg.Storage.SQLitePath)
	case "postgres":
		db, err = storage.Connect(&cfg.Database)
	default:
		log.Fatalf("Storage driver %q has no schema to migrate", cfg.Storage.Driver)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully!")
}
