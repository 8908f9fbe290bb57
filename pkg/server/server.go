package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/adfharrison1/stock-tracker/pkg/api"
)

// Server wraps the router and the API handler.
type Server struct {
	router  *mux.Router
	handler *api.Handler
}

// NewServer creates a new instance of Server around a configured API handler.
func NewServer(handler *api.Handler) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		handler: handler,
	}
	handler.RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return s
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
