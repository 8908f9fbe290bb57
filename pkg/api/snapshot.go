package api

import (
	"log"
	"net/http"
)

// HandleExport handles GET requests that stream a compressed snapshot of the
// full stock repository.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="stocks.stkt"`)

	if err := h.repo.Export(w); err != nil {
		// Headers may already be out, so just log.
		log.Printf("ERROR: Export failed: %v", err)
		return
	}

	log.Printf("INFO: Exported stock snapshot")
}

// HandleImport handles PUT requests that load a snapshot into the repository.
// Imported stocks overwrite existing ones by ticker and a single reindex runs
// after the load.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	imported, err := h.repo.Import(r.Body)
	if err != nil {
		log.Printf("ERROR: Import failed: %v", err)
		WriteError(w, err)
		return
	}

	log.Printf("INFO: Imported %d stocks from snapshot", imported)
	WriteJSON(w, http.StatusOK, map[string]int{"imported": imported})
}
