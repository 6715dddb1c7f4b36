package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"prms/backend/models"
	"prms/backend/store"
)

// TenantHandler serves tenant routes.
type TenantHandler struct {
	store *store.Store
}

// NewTenantHandler creates a new tenant handler.
func NewTenantHandler(s *store.Store) *TenantHandler {
	return &TenantHandler{store: s}
}

// ListTenants handles GET /tenants.
func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.Tenants(actor))
}

type createTenantRequest struct {
	FullName   string    `json:"fullName" validate:"required"`
	Phone      string    `json:"phone" validate:"required"`
	MoveInDate time.Time `json:"moveInDate" validate:"required"`
	UnitID     int64     `json:"unitId" validate:"required"`
}

// CreateTenant handles POST /tenants.
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tenant, err := h.store.AddTenant(actor, store.TenantInput{
		FullName:   req.FullName,
		Phone:      req.Phone,
		MoveInDate: req.MoveInDate,
		UnitID:     req.UnitID,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

type updateTenantStatusRequest struct {
	Status models.TenantStatus `json:"status" validate:"required,oneof=active left"`
}

// UpdateTenantStatus handles PUT /tenants/{id}/status.
func (h *TenantHandler) UpdateTenantStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	tenantID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid tenant id", http.StatusBadRequest)
		return
	}
	var req updateTenantStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tenant, err := h.store.UpdateTenantStatus(actor, tenantID, req.Status)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}
