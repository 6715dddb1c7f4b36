package handlers

import "net/http"

// HealthCheck reports liveness for deploy probes.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
