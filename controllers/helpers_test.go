package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"seedbnb/config"
	"seedbnb/models"
	"seedbnb/routes"
	"seedbnb/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRouter builds the real router over an in-memory database. Each
// test gets its own database, keyed by the test name.
func setupTestRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("JWT_SECRET", "testsecret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.RefreshToken{}, &models.Spot{},
		&models.SpotImage{}, &models.Review{}, &models.Booking{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Auth handlers go through the package-level connection.
	config.DB = db

	return db, routes.SetupRouter(db)
}

func createTestUser(t *testing.T, db *gorm.DB, firstName, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName:      firstName,
		LastName:       "Tester",
		Email:          email,
		HashedPassword: "not-a-real-hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func authHeader(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.CreateToken(userID)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return "Bearer " + token
}

// doJSON performs a request with an optional body and bearer token and
// decodes the JSON response into a generic map.
func doJSON(t *testing.T, r *gin.Engine, method, path, auth string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	decoded := map[string]any{}
	if resp.Body.Len() > 0 {
		if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", resp.Body.String(), err)
		}
	}
	return resp.Code, decoded
}

func validSpotBody() map[string]any {
	return map[string]any{
		"address":     "1 Main St",
		"city":        "X",
		"state":       "Y",
		"country":     "Z",
		"lat":         1,
		"lng":         1,
		"name":        "Test",
		"description": "d",
		"price":       10,
	}
}

func mustStatus(t *testing.T, got, want int, body map[string]any) {
	t.Helper()
	if got != want {
		t.Fatalf("expected status %d, got %d (body: %v)", want, got, body)
	}
}
