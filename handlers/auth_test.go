package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prms/backend/services"
	"prms/backend/store"
)

func TestLoginSuccess(t *testing.T) {
	s := setupTestStore(t)
	tokens := services.NewTokenManager("test-secret", "prms-test", time.Hour)
	handler := NewAuthHandler(s, tokens, testLogger())

	body, _ := json.Marshal(map[string]string{
		"identifier": store.SeedAdminUsername,
		"password":   store.SeedAdminPassword,
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       int64  `json:"id"`
			Password string `json:"password"`
		} `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a session token in the response")
	}
	if resp.User.Password != "" {
		t.Error("Expected the password to be stripped from the response")
	}

	// The issued token carries the admin's id.
	id, err := tokens.Parse(resp.Token)
	if err != nil {
		t.Fatalf("Issued token failed to parse: %v", err)
	}
	if id != 1 {
		t.Errorf("Expected token subject 1, got %d", id)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := setupTestStore(t)
	handler := NewAuthHandler(s, services.NewTokenManager("test-secret", "prms-test", time.Hour), testLogger())

	body, _ := json.Marshal(map[string]string{
		"identifier": store.SeedAdminUsername,
		"password":   "wrong",
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	s := setupTestStore(t)
	handler := NewAuthHandler(s, services.NewTokenManager("test-secret", "prms-test", time.Hour), testLogger())

	body, _ := json.Marshal(map[string]string{"identifier": "admin"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
