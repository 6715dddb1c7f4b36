package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prms/backend/models"
	"prms/backend/services"
)

func authTestHandler(t *testing.T, wantID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := UserIDFromContext(r); got != wantID {
			t.Errorf("Expected user id %d in context, got %d", wantID, got)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthValidToken(t *testing.T) {
	tokens := services.NewTokenManager("test-secret", "prms-test", time.Hour)
	token, err := tokens.Generate(models.User{ID: 7, Username: "casey"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	Auth(tokens)(authTestHandler(t, 7)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAuthRejections(t *testing.T) {
	tokens := services.NewTokenManager("test-secret", "prms-test", time.Hour)
	other := services.NewTokenManager("other-secret", "prms-test", time.Hour)
	forged, err := other.Generate(models.User{ID: 7})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	testCases := []struct {
		name       string
		authHeader string
	}{
		{"Missing header", ""},
		{"No Bearer prefix", "token-without-scheme"},
		{"Wrong scheme", "Basic dXNlcjpwYXNz"},
		{"Forged token", "Bearer " + forged},
		{"Garbage token", "Bearer not-a-jwt"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be reached on auth failure")
	})

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/payments", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()

			Auth(tokens)(next).ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAuthAllowsPreflight(t *testing.T) {
	tokens := services.NewTokenManager("test-secret", "prms-test", time.Hour)

	req := httptest.NewRequest("OPTIONS", "/payments", nil)
	w := httptest.NewRecorder()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	Auth(tokens)(next).ServeHTTP(w, req)

	if !reached {
		t.Error("Expected OPTIONS request to pass through without a token")
	}
}

func TestWithUserID(t *testing.T) {
	req := httptest.NewRequest("GET", "/payments", nil)
	if got := UserIDFromContext(req); got != 0 {
		t.Errorf("Expected 0 for unauthenticated request, got %d", got)
	}

	req = WithUserID(req, 5)
	if got := UserIDFromContext(req); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
}
