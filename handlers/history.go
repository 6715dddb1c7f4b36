package handlers

import (
	"net/http"

	"prms/backend/store"
)

// HistoryHandler serves the undo/redo routes. These bypass the
// permission model by design: they are a global rewind for the whole
// store, not a per-entity action.
type HistoryHandler struct {
	store *store.Store
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(s *store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// Undo handles POST /history/undo.
func (h *HistoryHandler) Undo(w http.ResponseWriter, r *http.Request) {
	done, err := h.store.Undo()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"undone": done})
}

// Redo handles POST /history/redo.
func (h *HistoryHandler) Redo(w http.ResponseWriter, r *http.Request) {
	done, err := h.store.Redo()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"redone": done})
}
