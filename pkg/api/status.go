package api

import "net/http"

// HandleStatus reports service liveness.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
