package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Stock queries
	router.HandleFunc("/api/stock/list", h.HandleList).Methods("GET")
	router.HandleFunc("/api/stock/search", h.HandleSearch).Methods("GET")
	router.HandleFunc("/api/stock/details/{tickers}", h.HandleDetails).Methods("GET")

	// Stock mutations
	router.HandleFunc("/api/stock/fillWithExampleData", h.HandleFillWithExampleData).Methods("PUT")
	router.HandleFunc("/api/stock/{ticker}", h.HandleDeleteStock).Methods("DELETE")

	// Snapshots and enrichment are operational surfaces; they sit behind a
	// session when auth is configured.
	router.Handle("/api/stock/export", h.requireSession(h.HandleExport)).Methods("GET")
	router.Handle("/api/stock/import", h.requireSession(h.HandleImport)).Methods("PUT")
	router.Handle("/api/fetch/morningstar", h.requireSession(h.HandleFetchMorningstar)).Methods("GET")

	// Auth ceremonies
	if h.auth != nil {
		router.HandleFunc("/api/auth/register", h.HandleBeginRegistration).Methods("GET")
		router.HandleFunc("/api/auth/register", h.HandleFinishRegistration).Methods("POST")
		router.HandleFunc("/api/auth/signIn", h.HandleBeginSignIn).Methods("GET")
		router.HandleFunc("/api/auth/signIn", h.HandleFinishSignIn).Methods("POST")
	}

	// Health
	router.HandleFunc("/api/status", h.HandleStatus).Methods("GET")
}
