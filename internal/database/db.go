package database

import (
	"log"

	"github.com/infinitystack/job-application-tracker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(dsn string) *gorm.DB {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: This creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.WorkExperience{},
		&models.Education{},
		&models.Job{},
		&models.UserJob{},
		&models.JobEvent{},
	)
	return DB
}
