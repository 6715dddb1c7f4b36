package services

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"prms/backend/database"
	"prms/backend/store"
)

func setupAuthTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Open(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	s, err := store.New(db, log)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

func TestAuthenticateByUsername(t *testing.T) {
	s := setupAuthTestStore(t)

	user, err := Authenticate(s, store.SeedAdminUsername, store.SeedAdminPassword)
	if err != nil {
		t.Fatalf("Expected successful login, got %v", err)
	}
	if user.ID != 1 {
		t.Errorf("Expected user id 1, got %d", user.ID)
	}
}

func TestAuthenticateByEmail(t *testing.T) {
	s := setupAuthTestStore(t)

	user, err := Authenticate(s, store.SeedAdminEmail, store.SeedAdminPassword)
	if err != nil {
		t.Fatalf("Expected successful login, got %v", err)
	}
	if user.Username != store.SeedAdminUsername {
		t.Errorf("Expected username %q, got %q", store.SeedAdminUsername, user.Username)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	s := setupAuthTestStore(t)

	// Deactivated accounts cannot log in even with valid credentials.
	employee, err := s.AddEmployee(1, store.EmployeeInput{
		Username: "casey",
		Email:    "casey@prms.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Failed to add employee: %v", err)
	}
	inactive := false
	if _, err := s.UpdateUser(1, employee.ID, store.UserUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("Failed to deactivate employee: %v", err)
	}

	testCases := []struct {
		name       string
		identifier string
		password   string
	}{
		{"Unknown identifier", "nobody", "whatever"},
		{"Wrong password", store.SeedAdminUsername, "wrong"},
		{"Deactivated account", "casey", "secret"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Authenticate(s, tc.identifier, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
