package main

import (
	"context"
	"log"
	"time"

	"photo-portfolio-be/internal/config"
	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/repository/implementation"
	"photo-portfolio-be/pkg/database"
)

// Seeds one photographer and a handful of shots when the tables are empty.
// Safe to run repeatedly.
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

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Error: schema ensure failed: %v", err)
	}

	ctx := context.Background()
	photographers := implementation.NewPhotographerRepository(db)
	shots := implementation.NewShotRepository(db)

	count, err := photographers.Count(ctx)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if count == 0 {
		p := entity.Photographer{
			Name:      "Studio Photographer",
			Bio:       "Portrait, wedding and family photography.",
			CreatedAt: time.Now().UTC(),
		}
		if err := photographers.Create(ctx, &p); err != nil {
			log.Fatalf("Error: seeding photographer: %v", err)
		}
		log.Printf("Seeded photographer id=%d", p.Id)
	}

	count, err = shots.Count(ctx)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if count == 0 {
		samples := []entity.Shot{
			{Title: "Golden Hour", Filename: "golden_hour.jpg", Caption: "Evening portrait session"},
			{Title: "First Dance", Filename: "first_dance.jpg", Caption: "Wedding reception"},
			{Title: "Tiny Toes", Filename: "tiny_toes.jpg", Caption: "Newborn shoot"},
			{Title: "City Walk", Filename: "city_walk.jpg", Caption: ""},
		}
		for i := range samples {
			samples[i].CreatedAt = time.Now().UTC()
			if err := shots.Create(ctx, &samples[i]); err != nil {
				log.Fatalf("Error: seeding shot: %v", err)
			}
		}
		log.Printf("Seeded %d shots", len(samples))
	}

	log.Println("Seed complete.")
}
