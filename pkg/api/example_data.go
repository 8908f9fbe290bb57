package api

import (
	"log"
	"net/http"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// HandleFillWithExampleData handles PUT requests that seed the fixed example
// dataset. Each stock goes through the non-reindexing insert, followed by a
// single index rebuild - duplicates from earlier runs are skipped silently.
func (h *Handler) HandleFillWithExampleData(w http.ResponseWriter, r *http.Request) {
	created, err := h.repo.BulkInsert(domain.ExampleStocks())
	if err != nil {
		log.Printf("ERROR: Failed to seed example data: %v", err)
		WriteError(w, err)
		return
	}

	log.Printf("INFO: Seeded example data (%d stocks created)", created)
	w.WriteHeader(http.StatusCreated)
}
