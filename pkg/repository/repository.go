// Package repository implements the business operations over the entity
// store. The central design point is that single-record mutations do not
// rebuild the derived search index: batch operations call the non-reindexing
// primitives N times and issue exactly one Reindex at the end, so a batch
// costs one index rebuild instead of N.
package repository

import (
	"io"
	"log"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// Repository implements domain.StockRepository on top of a domain.EntityStore.
type Repository struct {
	store domain.EntityStore
}

// New creates a stock repository.
func New(store domain.EntityStore) *Repository {
	return &Repository{store: store}
}

// InsertIfAbsent persists the stock unless a record with the same ticker
// already exists. A duplicate is not an error: it is logged and reported via
// the boolean so bulk seeding tolerates re-runs. The search index is not
// touched.
func (r *Repository) InsertIfAbsent(stock *domain.Stock) (bool, error) {
	if err := domain.ValidateStock(stock); err != nil {
		return false, err
	}

	_, err := r.store.Get(stock.Ticker)
	if err == nil {
		log.Printf("WARN: Skipping stock \"%s\" - existing already (ticker %s)", stock.Name, stock.Ticker)
		return false, nil
	}
	if !domain.IsNotFound(err) {
		return false, err
	}

	if err := r.store.Put(stock); err != nil {
		return false, err
	}
	log.Printf("INFO: Created stock \"%s\" (ticker %s)", stock.Name, stock.Ticker)
	return true, nil
}

// InsertAndReindex inserts a single stock and immediately rebuilds the index,
// so a subsequent read never observes a stale index.
func (r *Repository) InsertAndReindex(stock *domain.Stock) (bool, error) {
	created, err := r.InsertIfAbsent(stock)
	if err != nil {
		return created, err
	}
	return created, r.Reindex()
}

// BulkInsert inserts every stock without reindexing and then rebuilds the
// index once. Returns the number of records actually created.
func (r *Repository) BulkInsert(stocks []*domain.Stock) (int, error) {
	created := 0
	for _, stock := range stocks {
		ok, err := r.InsertIfAbsent(stock)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, r.Reindex()
}

// UpdateAttributes replaces the attribute fields of an existing stock. Fields
// absent from attrs are cleared, never left stale. Ticker and name are
// immutable. No reindex happens here; the caller batches one at the end if the
// change affects index-backed queries.
func (r *Repository) UpdateAttributes(ticker string, attrs domain.StockAttributes) error {
	stock, err := r.store.Get(ticker)
	if err != nil {
		return err
	}
	stock.ApplyAttributes(attrs)
	if err := domain.ValidateStock(stock); err != nil {
		return err
	}
	return r.store.Put(stock)
}

// DeleteByTicker removes a stock. NotFound if absent. No auto-reindex - the
// caller decides batching.
func (r *Repository) DeleteByTicker(ticker string) error {
	stock, err := r.store.Get(ticker)
	if err != nil {
		return err
	}
	if err := r.store.Delete(ticker); err != nil {
		return err
	}
	log.Printf("INFO: Deleted stock \"%s\" (ticker %s)", stock.Name, ticker)
	return nil
}

// Reindex rebuilds the derived search index from the full current record set.
func (r *Repository) Reindex() error {
	return r.store.RebuildIndex()
}

// ListAll returns every stock in ticker order.
func (r *Repository) ListAll() ([]*domain.Stock, error) {
	return r.store.FetchAll()
}

// ReadByTicker returns a single stock, NotFound if absent.
func (r *Repository) ReadByTicker(ticker string) (*domain.Stock, error) {
	return r.store.Get(ticker)
}

// ReadMany returns the stocks for all given tickers; the whole call fails with
// NotFound if any of them is missing.
func (r *Repository) ReadMany(tickers []string) ([]*domain.Stock, error) {
	return r.store.FetchMany(tickers)
}

// SearchNames runs a full-text name query against the derived index.
func (r *Repository) SearchNames(query string) ([]*domain.Stock, error) {
	return r.store.SearchNames(query)
}

// Export streams a snapshot of the record set.
func (r *Repository) Export(w io.Writer) error {
	return r.store.ExportTo(w)
}

// Import loads a snapshot into the store and rebuilds the index once,
// following the same batch protocol as BulkInsert.
func (r *Repository) Import(rd io.Reader) (int, error) {
	count, err := r.store.ImportFrom(rd)
	if err != nil {
		return count, err
	}
	return count, r.Reindex()
}
