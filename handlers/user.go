package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"prms/backend/models"
	"prms/backend/store"
)

// UserHandler serves account management routes.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// ListUsers handles GET /users. Credential secrets are stripped before
// the collection leaves the API.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.store.Users()
	for i := range users {
		users[i].Password = ""
	}
	writeJSON(w, http.StatusOK, users)
}

type createEmployeeRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// CreateEmployee handles POST /users.
func (h *UserHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.store.AddEmployee(actor, store.EmployeeInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusCreated, user)
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=4"`
	IsActive *bool   `json:"isActive"`
}

// UpdateUser handles PUT /users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	targetID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.store.UpdateUser(actor, targetID, store.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}

// UpdateUserPermissions handles PUT /users/{id}/permissions. The body
// is the full replacement permission vector.
func (h *UserHandler) UpdateUserPermissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	targetID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	var perms models.Permissions
	if err := decodeJSON(r, &perms); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.store.UpdateUserPermissions(actor, targetID, perms)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}
