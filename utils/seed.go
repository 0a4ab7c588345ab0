package utils

import (
	"log"
	"time"

	"seedbnb/config"
	"seedbnb/models"
)

// SeedDemoSpots loads demo users, spots, images, reviews, and the fixed
// demo bookings. Safe to run on every boot; existing rows are left alone.
func SeedDemoSpots() {
	db := config.DB

	var count int64
	db.Model(&models.Spot{}).Count(&count)
	if count > 0 {
		return
	}

	demoPassword, err := HashPassword("password")
	if err != nil {
		log.Printf("seed skipped: %v", err)
		return
	}

	users := []models.User{
		{FirstName: "Demo", LastName: "Lition", Email: "demo@user.io", HashedPassword: demoPassword},
		{FirstName: "Fake", LastName: "User", Email: "user1@user.io", HashedPassword: demoPassword},
		{FirstName: "Faker", LastName: "User", Email: "user2@user.io", HashedPassword: demoPassword},
	}
	for i := range users {
		var existing models.User
		if err := db.Where("email = ?", users[i].Email).First(&existing).Error; err == nil {
			users[i] = existing
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			log.Printf("seed user failed: %v", err)
			return
		}
	}

	spots := []models.Spot{
		{
			OwnerID: users[0].ID,
			Address: "123 Disney Lane", City: "San Francisco", State: "California", Country: "United States of America",
			Lat: 37.7645358, Lng: -122.4730327,
			Name: "App Academy", Description: "Place where web developers are created", Price: 123,
			SpotImages: []models.SpotImage{
				{URL: "https://images.seedbnb.dev/spots/1-1.jpg", Preview: true},
				{URL: "https://images.seedbnb.dev/spots/1-2.jpg"},
			},
		},
		{
			OwnerID: users[1].ID,
			Address: "456 Ocean Ave", City: "Santa Cruz", State: "California", Country: "United States of America",
			Lat: 36.9741171, Lng: -122.0307963,
			Name: "Surf Shack", Description: "Steps from the boardwalk", Price: 219,
			SpotImages: []models.SpotImage{
				{URL: "https://images.seedbnb.dev/spots/2-1.jpg", Preview: true},
			},
		},
		{
			OwnerID: users[2].ID,
			Address: "789 Alpine Way", City: "Tahoe City", State: "California", Country: "United States of America",
			Lat: 39.1676589, Lng: -120.1452007,
			Name: "Lakeside Cabin", Description: "Quiet cabin with lake views", Price: 310,
		},
	}
	for i := range spots {
		if err := db.Create(&spots[i]).Error; err != nil {
			log.Printf("seed spot failed: %v", err)
			return
		}
	}

	reviews := []models.Review{
		{SpotID: spots[0].ID, UserID: users[1].ID, Review: "Great location, would stay again.", Stars: 5},
		{SpotID: spots[0].ID, UserID: users[2].ID, Review: "A bit noisy at night.", Stars: 3},
		{SpotID: spots[1].ID, UserID: users[0].ID, Review: "Perfect weekend getaway.", Stars: 4},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			log.Printf("seed review failed: %v", err)
			return
		}
	}

	bookings := []models.Booking{
		{SpotID: spots[1].ID, UserID: users[2].ID, StartDate: date(2023, 12, 24), EndDate: date(2024, 1, 2)},
		{SpotID: spots[0].ID, UserID: users[1].ID, StartDate: date(2023, 10, 19), EndDate: date(2023, 10, 21)},
		{SpotID: spots[2].ID, UserID: users[0].ID, StartDate: date(2023, 8, 20), EndDate: date(2023, 8, 26)},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Printf("seed booking failed: %v", err)
			return
		}
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
