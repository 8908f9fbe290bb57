package api

import (
	"context"

	"github.com/adfharrison1/stock-tracker/pkg/auth"
	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// Enricher drives Morningstar enrichment runs.
type Enricher interface {
	EnrichOne(ctx context.Context, ticker string) error
	EnrichAll(ctx context.Context) (updated, eligible int, err error)
}

// Handler provides the HTTP handlers for the stock API.
type Handler struct {
	repo     domain.StockRepository
	enricher Enricher
	auth     *auth.Service
}

// NewHandler creates a new API handler with dependency injection. The auth
// service may be nil, in which case the auth routes are not registered and no
// route is session-guarded.
func NewHandler(repo domain.StockRepository, enricher Enricher, authService *auth.Service) *Handler {
	return &Handler{
		repo:     repo,
		enricher: enricher,
		auth:     authService,
	}
}
