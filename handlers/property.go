package handlers

import (
	"net/http"

	"prms/backend/store"
)

// PropertyHandler serves property and unit routes.
type PropertyHandler struct {
	store *store.Store
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(s *store.Store) *PropertyHandler {
	return &PropertyHandler{store: s}
}

// ListProperties handles GET /properties.
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Properties())
}

type createPropertyRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

// CreateProperty handles POST /properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createPropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	property, err := h.store.AddProperty(actor, store.PropertyInput{
		Name:     req.Name,
		Location: req.Location,
		Type:     req.Type,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

// ListUnits handles GET /units.
func (h *PropertyHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Units())
}

type createUnitRequest struct {
	PropertyID int64   `json:"propertyId" validate:"required"`
	UnitNumber string  `json:"unitNumber" validate:"required"`
	RentAmount float64 `json:"rentAmount" validate:"gte=0"`
	MaxTenants *int    `json:"maxTenants" validate:"omitempty,gte=1"`
}

// CreateUnit handles POST /units.
func (h *PropertyHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createUnitRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	unit, err := h.store.AddUnit(actor, store.UnitInput{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
		RentAmount: req.RentAmount,
		MaxTenants: req.MaxTenants,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}
