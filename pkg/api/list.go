package api

import (
	"log"
	"net/http"

	"github.com/adfharrison1/stock-tracker/pkg/query"
)

// HandleList handles GET requests for the filtered, sorted, paginated stock
// list. An empty result is a successful 200 with count 0.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	spec, err := query.Parse(r.URL.Query())
	if err != nil {
		log.Printf("ERROR: Invalid list query: %v", err)
		WriteError(w, err)
		return
	}

	stocks, err := h.repo.ListAll()
	if err != nil {
		log.Printf("ERROR: Failed to read stocks: %v", err)
		WriteError(w, err)
		return
	}

	result := query.Run(stocks, spec)
	log.Printf("INFO: handleList returning %d of %d stocks", len(result.Stocks), result.Count)
	WriteJSON(w, http.StatusOK, result)
}
