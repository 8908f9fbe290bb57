package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HandleDeleteStock handles DELETE requests for a single stock. This is a
// single-record write, so the index is rebuilt immediately after the delete.
func (h *Handler) HandleDeleteStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ticker := vars["ticker"]

	if err := h.repo.DeleteByTicker(ticker); err != nil {
		log.Printf("ERROR: Delete failed for stock '%s': %v", ticker, err)
		WriteError(w, err)
		return
	}

	if err := h.repo.Reindex(); err != nil {
		log.Printf("ERROR: Reindex after delete of '%s' failed: %v", ticker, err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
