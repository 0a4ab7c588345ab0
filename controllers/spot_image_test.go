package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"seedbnb/models"
)

func TestAddSpotImage(t *testing.T) {
	db, r := setupTestRouter(t)
	owner := createTestUser(t, db, "Ima", "ima@test.io")
	other := createTestUser(t, db, "Oth", "oth@test.io")

	spot := models.Spot{
		OwnerID: owner.ID, Address: "5 Photo Pl", City: "A", State: "B", Country: "C",
		Lat: 1, Lng: 1, Name: "Photogenic", Description: "d", Price: 80,
	}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("failed to seed spot: %v", err)
	}
	imagesPath := fmt.Sprintf("/api/spots/%d/images", spot.ID)

	status, body := doJSON(t, r, http.MethodPost, "/api/spots/9999/images", authHeader(t, owner.ID),
		map[string]any{"url": "https://img.test/a.jpg", "preview": true})
	mustStatus(t, status, http.StatusNotFound, body)

	status, body = doJSON(t, r, http.MethodPost, imagesPath, authHeader(t, other.ID),
		map[string]any{"url": "https://img.test/a.jpg", "preview": true})
	mustStatus(t, status, http.StatusForbidden, body)

	// A missing url must come back under its JSON name with the configured
	// message, not under the Go field name.
	status, body = doJSON(t, r, http.MethodPost, imagesPath, authHeader(t, owner.ID),
		map[string]any{"preview": true})
	mustStatus(t, status, http.StatusBadRequest, body)
	errs := body["errors"].(map[string]any)
	if errs["url"] != "Image URL is required" {
		t.Fatalf("unexpected validation errors: %v", errs)
	}

	status, body = doJSON(t, r, http.MethodPost, imagesPath, authHeader(t, owner.ID),
		map[string]any{"url": "https://img.test/a.jpg", "preview": true})
	mustStatus(t, status, http.StatusOK, body)
	if body["url"] != "https://img.test/a.jpg" || body["preview"] != true {
		t.Fatalf("unexpected image response: %v", body)
	}
	firstID := uint(body["id"].(float64))

	// Flagging a second image as preview must clear the first one's flag.
	status, body = doJSON(t, r, http.MethodPost, imagesPath, authHeader(t, owner.ID),
		map[string]any{"url": "https://img.test/b.jpg", "preview": true})
	mustStatus(t, status, http.StatusOK, body)

	var first models.SpotImage
	if err := db.First(&first, firstID).Error; err != nil {
		t.Fatalf("failed to reload first image: %v", err)
	}
	if first.Preview {
		t.Fatal("expected previous preview flag to be cleared")
	}

	var previewCount int64
	db.Model(&models.SpotImage{}).Where("spot_id = ? AND preview = ?", spot.ID, true).Count(&previewCount)
	if previewCount != 1 {
		t.Fatalf("expected exactly one preview image, got %d", previewCount)
	}
}

func TestDeleteSpotImage(t *testing.T) {
	db, r := setupTestRouter(t)
	owner := createTestUser(t, db, "Del", "del@test.io")
	other := createTestUser(t, db, "Eld", "eld@test.io")

	spot := models.Spot{
		OwnerID: owner.ID, Address: "6 Remove Rd", City: "A", State: "B", Country: "C",
		Lat: 1, Lng: 1, Name: "Removable", Description: "d", Price: 80,
		SpotImages: []models.SpotImage{{URL: "https://img.test/gone.jpg", Preview: true}},
	}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("failed to seed spot: %v", err)
	}
	imagePath := fmt.Sprintf("/api/spot-images/%d", spot.SpotImages[0].ID)

	status, body := doJSON(t, r, http.MethodDelete, "/api/spot-images/9999", authHeader(t, owner.ID), nil)
	mustStatus(t, status, http.StatusNotFound, body)

	status, body = doJSON(t, r, http.MethodDelete, imagePath, authHeader(t, other.ID), nil)
	mustStatus(t, status, http.StatusForbidden, body)
	if body["message"] != "Forbidden: spot does not belong to user" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	status, body = doJSON(t, r, http.MethodDelete, imagePath, authHeader(t, owner.ID), nil)
	mustStatus(t, status, http.StatusOK, body)
	if body["message"] != "Successfully deleted" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	var count int64
	db.Model(&models.SpotImage{}).Where("spot_id = ?", spot.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected image row removed, found %d", count)
	}
}
