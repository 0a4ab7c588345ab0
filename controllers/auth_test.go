package controllers_test

import (
	"net/http"
	"testing"
)

func TestSignupAndLogin(t *testing.T) {
	_, r := setupTestRouter(t)

	signup := map[string]any{
		"firstName": "Demo",
		"lastName":  "Lition",
		"email":     "demo@test.io",
		"password":  "password",
	}

	status, body := doJSON(t, r, http.MethodPost, "/api/signup", "", signup)
	mustStatus(t, status, http.StatusCreated, body)
	user := body["user"].(map[string]any)
	if user["firstName"] != "Demo" || user["email"] != "demo@test.io" {
		t.Fatalf("unexpected signup response: %v", user)
	}

	status, body = doJSON(t, r, http.MethodPost, "/api/signup", "", signup)
	mustStatus(t, status, http.StatusConflict, body)

	status, body = doJSON(t, r, http.MethodPost, "/api/login", "",
		map[string]any{"email": "demo@test.io", "password": "password"})
	mustStatus(t, status, http.StatusOK, body)
	if body["token"] == nil || body["token"] == "" {
		t.Fatal("expected an access token in the login response")
	}

	status, body = doJSON(t, r, http.MethodPost, "/api/login", "",
		map[string]any{"email": "demo@test.io", "password": "wrong"})
	mustStatus(t, status, http.StatusUnauthorized, body)
}
