package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"prms/backend/store"
)

// PaymentHandler serves payment routes.
type PaymentHandler struct {
	store *store.Store
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(s *store.Store) *PaymentHandler {
	return &PaymentHandler{store: s}
}

// ListPayments handles GET /payments.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.Payments(actor))
}

type createPaymentRequest struct {
	TenantID      int64     `json:"tenantId" validate:"required"`
	UnitID        int64     `json:"unitId" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	PaymentDate   time.Time `json:"paymentDate" validate:"required"`
	PaymentMethod string    `json:"paymentMethod" validate:"required"`
	Notes         string    `json:"notes"`
}

// CreatePayment handles POST /payments.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := h.store.AddPayment(actor, store.PaymentInput{
		TenantID:      req.TenantID,
		UnitID:        req.UnitID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// CorrectPayment handles POST /payments/{id}/correct.
func (h *PaymentHandler) CorrectPayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	paymentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	payment, err := h.store.MarkPaymentCorrected(actor, paymentID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
