package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

const stocksBucket = "stocks"

// Store is the entity store: stock records live in a bbolt bucket keyed by
// ticker, encoded as msgpack. A derived bleve full-text index sits next to the
// records and is only ever changed by RebuildIndex - writes never touch it.
type Store struct {
	db *bolt.DB

	// Guards the index handle. RebuildIndex swaps in a fresh index under the
	// write lock; concurrent rebuilds are last-write-wins.
	indexMu sync.RWMutex
	index   bleve.Index

	dataDir  string
	fileName string
}

// Open opens (or creates) the store file and builds the initial search index
// from whatever records are already present.
func Open(options ...Option) (*Store, error) {
	s := &Store{
		dataDir:  ".",
		fileName: "stock-tracker.db",
	}
	for _, option := range options {
		option(s)
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(s.dataDir, s.fileName)
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	s.db = db

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(stocksBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := s.RebuildIndex(); err != nil {
		db.Close()
		return nil, err
	}

	count, _ := s.Count()
	log.Printf("INFO: Opened store at %s (%d stocks, index built)", path, count)
	return s, nil
}

// Close closes the index and the underlying database.
func (s *Store) Close() error {
	s.indexMu.Lock()
	if s.index != nil {
		s.index.Close()
		s.index = nil
	}
	s.indexMu.Unlock()
	return s.db.Close()
}

// DB exposes the underlying bbolt handle so the auth stores can keep their
// buckets in the same file.
func (s *Store) DB() *bolt.DB {
	return s.db
}

// Put creates or overwrites a stock record. The search index is not updated;
// callers decide when to RebuildIndex.
func (s *Store) Put(stock *domain.Stock) error {
	data, err := msgpack.Marshal(stock)
	if err != nil {
		return fmt.Errorf("failed to encode stock %s: %w", stock.Ticker, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stocksBucket)).Put([]byte(stock.Ticker), data)
	})
}

// Get fetches a single stock by ticker.
func (s *Store) Get(ticker string) (*domain.Stock, error) {
	var stock *domain.Stock
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(stocksBucket)).Get([]byte(ticker))
		if data == nil {
			return domain.NotFoundf("Stock %s not found.", ticker)
		}
		stock = &domain.Stock{}
		return msgpack.Unmarshal(data, stock)
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

// FetchAll returns every stock record. bbolt iterates keys in byte order, so
// the result is always sorted by ticker - this is the deterministic fallback
// ordering the query engine relies on when no sort is requested.
func (s *Store) FetchAll() ([]*domain.Stock, error) {
	var stocks []*domain.Stock
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stocksBucket)).ForEach(func(k, v []byte) error {
			stock := &domain.Stock{}
			if err := msgpack.Unmarshal(v, stock); err != nil {
				return fmt.Errorf("failed to decode stock %s: %w", k, err)
			}
			stocks = append(stocks, stock)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

// FetchMany returns the stocks for the given tickers in request order. If any
// ticker is missing the whole call fails with NotFound.
func (s *Store) FetchMany(tickers []string) ([]*domain.Stock, error) {
	stocks := make([]*domain.Stock, 0, len(tickers))
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(stocksBucket))
		for _, ticker := range tickers {
			data := bucket.Get([]byte(ticker))
			if data == nil {
				return domain.NotFoundf("Stock %s not found.", ticker)
			}
			stock := &domain.Stock{}
			if err := msgpack.Unmarshal(data, stock); err != nil {
				return fmt.Errorf("failed to decode stock %s: %w", ticker, err)
			}
			stocks = append(stocks, stock)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

// Delete removes a stock record. The search index is not updated.
func (s *Store) Delete(ticker string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(stocksBucket))
		if bucket.Get([]byte(ticker)) == nil {
			return domain.NotFoundf("Stock %s not found.", ticker)
		}
		return bucket.Delete([]byte(ticker))
	})
}

// Count returns the number of stock records.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket([]byte(stocksBucket)).Stats().KeyN
		return nil
	})
	return count, err
}
