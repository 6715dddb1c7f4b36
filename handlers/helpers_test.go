package handlers

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"prms/backend/database"
	"prms/backend/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Open(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := store.New(db, testLogger())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

// seedRentalData creates a property, unit, and tenant through the
// seeded admin so payment routes have valid references.
func seedRentalData(t *testing.T, s *store.Store) (propertyID, unitID, tenantID int64) {
	t.Helper()
	p, err := s.AddProperty(1, store.PropertyInput{Name: "Riverside", Location: "North Bank", Type: "residential"})
	if err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}
	u, err := s.AddUnit(1, store.UnitInput{PropertyID: p.ID, UnitNumber: "A-1", RentAmount: 500})
	if err != nil {
		t.Fatalf("Failed to create unit: %v", err)
	}
	tn, err := s.AddTenant(1, store.TenantInput{
		FullName:   "Jordan Reed",
		Phone:      "555-0101",
		MoveInDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UnitID:     u.ID,
	})
	if err != nil {
		t.Fatalf("Failed to create tenant: %v", err)
	}
	return p.ID, u.ID, tn.ID
}

func paymentRecord(tenantID, unitID int64) store.PaymentInput {
	return store.PaymentInput{
		TenantID:      tenantID,
		UnitID:        unitID,
		Amount:        500,
		PaymentDate:   time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "cash",
	}
}
