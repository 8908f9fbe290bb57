package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// HandleDetails handles GET requests for one or more stocks by a
// comma-separated ticker list. If any requested ticker is missing the whole
// call fails with 404.
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tickers := strings.Split(vars["tickers"], ",")

	stocks, err := h.repo.ReadMany(tickers)
	if err != nil {
		log.Printf("ERROR: Failed to read stocks %v: %v", tickers, err)
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stocks)
}
