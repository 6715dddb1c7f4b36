package handlers

import (
	"net/http"

	"prms/backend/store"
)

// LogHandler serves the audit trail routes.
type LogHandler struct {
	store *store.Store
}

// NewLogHandler creates a new log handler.
func NewLogHandler(s *store.Store) *LogHandler {
	return &LogHandler{store: s}
}

// ListLogs handles GET /logs, newest entries first.
func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.Logs(actor))
}

// ClearLogs handles DELETE /logs.
func (h *LogHandler) ClearLogs(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	if err := h.store.ClearLogs(actor); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
