package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"seedbnb/models"
)

func TestCreateSpotBooking(t *testing.T) {
	db, r := setupTestRouter(t)
	owner := createTestUser(t, db, "Hos", "hos@test.io")
	guest := createTestUser(t, db, "Gue", "gue@test.io")
	rival := createTestUser(t, db, "Riv", "riv@test.io")

	spot := models.Spot{
		OwnerID: owner.ID, Address: "8 Stay St", City: "A", State: "B", Country: "C",
		Lat: 1, Lng: 1, Name: "Bookable", Description: "d", Price: 120,
	}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("failed to seed spot: %v", err)
	}
	bookingsPath := fmt.Sprintf("/api/spots/%d/bookings", spot.ID)

	status, body := doJSON(t, r, http.MethodPost, "/api/spots/9999/bookings", authHeader(t, guest.ID),
		map[string]any{"startDate": "2026-09-01", "endDate": "2026-09-05"})
	mustStatus(t, status, http.StatusNotFound, body)

	status, body = doJSON(t, r, http.MethodPost, bookingsPath, authHeader(t, owner.ID),
		map[string]any{"startDate": "2026-09-01", "endDate": "2026-09-05"})
	mustStatus(t, status, http.StatusForbidden, body)

	status, body = doJSON(t, r, http.MethodPost, bookingsPath, authHeader(t, guest.ID),
		map[string]any{"startDate": "2026-09-05", "endDate": "2026-09-01"})
	mustStatus(t, status, http.StatusBadRequest, body)

	status, body = doJSON(t, r, http.MethodPost, bookingsPath, authHeader(t, guest.ID),
		map[string]any{"startDate": "2026-09-01", "endDate": "2026-09-05"})
	mustStatus(t, status, http.StatusCreated, body)

	// Overlapping range is rejected.
	status, body = doJSON(t, r, http.MethodPost, bookingsPath, authHeader(t, rival.ID),
		map[string]any{"startDate": "2026-09-04", "endDate": "2026-09-08"})
	mustStatus(t, status, http.StatusForbidden, body)
	if body["message"] != "Sorry, this spot is already booked for the specified dates" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	// Back-to-back stay (checkout day equals next check-in) is fine.
	status, body = doJSON(t, r, http.MethodPost, bookingsPath, authHeader(t, rival.ID),
		map[string]any{"startDate": "2026-09-05", "endDate": "2026-09-08"})
	mustStatus(t, status, http.StatusCreated, body)
}

func TestGetCurrentUserBookings(t *testing.T) {
	db, r := setupTestRouter(t)
	owner := createTestUser(t, db, "Hst", "hst@test.io")
	guest := createTestUser(t, db, "Gst", "gst@test.io")

	spot := models.Spot{
		OwnerID: owner.ID, Address: "9 Trip Tr", City: "A", State: "B", Country: "C",
		Lat: 1, Lng: 1, Name: "Trippy", Description: "d", Price: 110,
	}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("failed to seed spot: %v", err)
	}

	status, body := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/spots/%d/bookings", spot.ID),
		authHeader(t, guest.ID), map[string]any{"startDate": "2026-10-01", "endDate": "2026-10-03"})
	mustStatus(t, status, http.StatusCreated, body)

	status, body = doJSON(t, r, http.MethodGet, "/api/bookings/current", authHeader(t, guest.ID), nil)
	mustStatus(t, status, http.StatusOK, body)
	bookings := body["Bookings"].([]any)
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	booked := bookings[0].(map[string]any)
	if booked["Spot"].(map[string]any)["name"] != "Trippy" {
		t.Fatalf("expected booked spot attached, got %v", booked["Spot"])
	}

	status, body = doJSON(t, r, http.MethodGet, "/api/bookings/current", authHeader(t, owner.ID), nil)
	mustStatus(t, status, http.StatusOK, body)
	if len(body["Bookings"].([]any)) != 0 {
		t.Fatalf("expected no bookings for the host, got %v", body["Bookings"])
	}
}
