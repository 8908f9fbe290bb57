package api

import (
	"log"
	"net/http"
)

// HandleSearch handles GET requests for full-text name search backed by the
// derived index.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing query parameter 'q'")
		return
	}

	stocks, err := h.repo.SearchNames(q)
	if err != nil {
		log.Printf("ERROR: Search for %q failed: %v", q, err)
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stocks)
}
