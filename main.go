package main

import (
	"fmt"
	"log"
	"os"

	"seedbnb/config"
	"seedbnb/models"
	"seedbnb/routes"
	"seedbnb/utils"

	"gorm.io/gorm"
)

func main() {
	config.ConnectDatabase()
	db := config.DB

	// migrate
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.SeedDemoSpots()

	r := routes.SetupRouter(db)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	log.Printf("server running on %s", addr)
	r.Run(addr)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.RefreshToken{}, &models.Spot{},
		&models.SpotImage{}, &models.Review{}, &models.Booking{})
}
