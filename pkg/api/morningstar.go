package api

import (
	"log"
	"net/http"
)

// HandleFetchMorningstar handles GET requests that refresh stock attributes
// from Morningstar. With a ticker parameter only that stock is enriched,
// otherwise every stock with a Morningstar ID is. A run with no eligible
// stocks returns 204.
func (h *Handler) HandleFetchMorningstar(w http.ResponseWriter, r *http.Request) {
	if h.enricher == nil {
		WriteJSONError(w, http.StatusNotImplemented, "Fetching is not configured")
		return
	}

	ticker := r.URL.Query().Get("ticker")
	if ticker != "" {
		if err := h.enricher.EnrichOne(r.Context(), ticker); err != nil {
			log.Printf("ERROR: Morningstar fetch for '%s' failed: %v", ticker, err)
			WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	updated, eligible, err := h.enricher.EnrichAll(r.Context())
	if err != nil {
		log.Printf("ERROR: Morningstar fetch failed: %v", err)
		WriteError(w, err)
		return
	}
	if eligible == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	log.Printf("INFO: Morningstar fetch updated %d of %d stocks", updated, eligible)
	WriteJSON(w, http.StatusOK, map[string]int{"updated": updated, "eligible": eligible})
}
