package handlers

import (
	"context"
	"net/http"
	"time"
)

// GetHealth handles GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if h.healthChecker != nil {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.healthChecker.PingContext(pingCtx); err != nil {
			h.logger.Error("health check failed: store unreachable", "error", err)
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
