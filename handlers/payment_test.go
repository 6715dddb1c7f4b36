package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"prms/backend/middleware"
	"prms/backend/models"
)

func TestCreatePayment(t *testing.T) {
	s := setupTestStore(t)
	_, unitID, tenantID := seedRentalData(t, s)
	handler := NewPaymentHandler(s)

	body, _ := json.Marshal(map[string]interface{}{
		"tenantId":      tenantID,
		"unitId":        unitID,
		"amount":        500,
		"paymentDate":   "2026-08-10T00:00:00Z",
		"paymentMethod": "cash",
	})
	req := httptest.NewRequest("POST", "/payments", bytes.NewBuffer(body))
	req = middleware.WithUserID(req, 1)
	w := httptest.NewRecorder()

	handler.CreatePayment(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var created models.Payment
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if created.Status != models.StatusApproved {
		t.Errorf("Expected admin payment to be approved, got %q", created.Status)
	}
	if created.CreatedBy != 1 {
		t.Errorf("Expected createdBy 1, got %d", created.CreatedBy)
	}
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	s := setupTestStore(t)
	_, unitID, tenantID := seedRentalData(t, s)
	handler := NewPaymentHandler(s)

	body, _ := json.Marshal(map[string]interface{}{
		"tenantId":      tenantID,
		"unitId":        unitID,
		"amount":        -10,
		"paymentDate":   "2026-08-10T00:00:00Z",
		"paymentMethod": "cash",
	})
	req := httptest.NewRequest("POST", "/payments", bytes.NewBuffer(body))
	req = middleware.WithUserID(req, 1)
	w := httptest.NewRecorder()

	handler.CreatePayment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCorrectPayment(t *testing.T) {
	s := setupTestStore(t)
	_, unitID, tenantID := seedRentalData(t, s)
	handler := NewPaymentHandler(s)

	payment, err := s.AddPayment(1, paymentRecord(tenantID, unitID))
	if err != nil {
		t.Fatalf("Failed to add payment: %v", err)
	}

	correct := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", fmt.Sprintf("/payments/%d/correct", payment.ID), nil)
		req = middleware.WithUserID(req, 1)
		req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(payment.ID)})
		w := httptest.NewRecorder()
		handler.CorrectPayment(w, req)
		return w
	}

	if w := correct(); w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	// The flag is write-once; a second correction conflicts.
	if w := correct(); w.Code != http.StatusConflict {
		t.Errorf("Expected status %d on repeat correction, got %d", http.StatusConflict, w.Code)
	}
}

func TestCorrectPaymentBadID(t *testing.T) {
	s := setupTestStore(t)
	handler := NewPaymentHandler(s)

	req := httptest.NewRequest("POST", "/payments/abc/correct", nil)
	req = middleware.WithUserID(req, 1)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()

	handler.CorrectPayment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCorrectPaymentUnknownID(t *testing.T) {
	s := setupTestStore(t)
	handler := NewPaymentHandler(s)

	req := httptest.NewRequest("POST", "/payments/42/correct", nil)
	req = middleware.WithUserID(req, 1)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	w := httptest.NewRecorder()

	handler.CorrectPayment(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
