package handlers

import (
	"context"
	"net/http"
)

// Pinger reports whether the document store is reachable.
type Pinger func(ctx context.Context) error

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Error  string `json:"error,omitempty"`
}

// Healthz reports 503 while the store is unreachable. Queries keep being
// served in that state with fallback values.
func Healthz(ping Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping == nil {
			writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Store: "unknown"})
			return
		}
		if err := ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "degraded",
				Store:  "unreachable",
				Error:  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Store: "reachable"})
	}
}
