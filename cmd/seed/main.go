package main

import (
	"log"
	"time"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/internal/pkg/database"
	"github.com/flixhive/FlixHive/internal/pkg/env"
)

// Seeds the database with an admin account, the default plan lineup and a
// small demo catalog so a fresh instance has something to manage.
func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	db := database.GetDB()

	adminEmail := env.GetEnv("SEED_ADMIN_EMAIL", "admin@flixhive.local")
	adminPassword := env.GetEnv("SEED_ADMIN_PASSWORD", "change-me")

	var count int64
	db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count)
	if count == 0 {
		admin, err := models.CreateUser("Administrator", adminEmail, adminPassword)
		if err != nil {
			log.Fatalf("Failed to build admin user: %v", err)
		}
		admin.IsAdmin = true
		if err := db.Create(admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	}

	plans := []models.SubscriptionPlan{
		{Name: "Basic", Price: 4.99, DurationDays: 30, IsActive: true},
		{Name: "Standard", Price: 9.99, DurationDays: 30, IsActive: true},
		{Name: "Annual", Price: 99.99, DurationDays: 365, IsActive: true},
	}
	for i := range plans {
		db.Model(&models.SubscriptionPlan{}).Where("name = ?", plans[i].Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&plans[i]).Error; err != nil {
			log.Fatalf("Failed to create plan %s: %v", plans[i].Name, err)
		}
		log.Printf("Created plan %s", plans[i].Name)
	}

	db.Model(&models.Category{}).Count(&count)
	if count == 0 {
		now := time.Now()
		categories := []models.Category{
			{Title: "Movies", Slug: "movies", IsActive: true},
			{Title: "Series", Slug: "series", IsActive: true},
			{Title: "Documentaries", Slug: "documentaries", IsActive: true},
		}
		for i := range categories {
			if err := db.Create(&categories[i]).Error; err != nil {
				log.Fatalf("Failed to create category %s: %v", categories[i].Slug, err)
			}
		}

		videos := []models.Video{
			{Title: "Welcome Aboard", CategoryID: categories[0].ID, IsPublished: true, PublishedAt: &now, ViewCount: 120},
			{Title: "Pilot Episode", CategoryID: categories[1].ID, IsPublished: true, PublishedAt: &now, ViewCount: 340},
			{Title: "Behind the Lens", CategoryID: categories[2].ID, IsPublished: true, PublishedAt: &now, ViewCount: 45},
		}
		for i := range videos {
			if err := db.Create(&videos[i]).Error; err != nil {
				log.Fatalf("Failed to create video %s: %v", videos[i].Title, err)
			}
		}
		log.Printf("Created %d demo categories and %d demo videos", len(categories), len(videos))
	}

	log.Println("Seeding complete")
}
