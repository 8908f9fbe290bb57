package domain

import "io"

// EntityStore defines the persistence operations the repository builds on.
// Writes never touch the derived search index; RebuildIndex is the only way
// the index changes.
type EntityStore interface {
	Put(stock *Stock) error
	Get(ticker string) (*Stock, error)
	FetchAll() ([]*Stock, error)
	FetchMany(tickers []string) ([]*Stock, error)
	Delete(ticker string) error
	Count() (int, error)
	RebuildIndex() error
	SearchNames(query string) ([]*Stock, error)
	ExportTo(w io.Writer) error
	ImportFrom(r io.Reader) (int, error)
}

// StockRepository is the core business interface over the entity store.
// Insert and delete primitives deliberately do not reindex; batch callers
// issue a single Reindex at the end instead of one per write.
type StockRepository interface {
	InsertIfAbsent(stock *Stock) (bool, error)
	InsertAndReindex(stock *Stock) (bool, error)
	BulkInsert(stocks []*Stock) (int, error)
	UpdateAttributes(ticker string, attrs StockAttributes) error
	DeleteByTicker(ticker string) error
	Reindex() error
	ListAll() ([]*Stock, error)
	ReadByTicker(ticker string) (*Stock, error)
	ReadMany(tickers []string) ([]*Stock, error)
	SearchNames(query string) ([]*Stock, error)
	Export(w io.Writer) error
	Import(r io.Reader) (int, error)
}
