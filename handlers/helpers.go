package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"prms/backend/middleware"
	"prms/backend/store"
)

var validate = validator.New()

// decodeJSON parses the request body into dst and runs struct
// validation on it.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError maps the store's error taxonomy onto HTTP statuses.
// Authorization failures get a generic message so the response does not
// leak which switch was missing.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUnauthorized):
		http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// actingUser pulls the authenticated user id out of the request
// context, writing a 401 when it is missing.
func actingUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := middleware.UserIDFromContext(r)
	if id == 0 {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}
