package main

import (
	"log"

	"photo-portfolio-be/internal/config"
	"photo-portfolio-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Ensuring database tables exist...")

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Error: schema ensure failed: %v", err)
	}

	log.Println("Success: all tables present.")
}
