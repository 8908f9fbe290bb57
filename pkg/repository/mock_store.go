package repository

import (
	"io"
	"sort"
	"sync"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// MockEntityStore provides an in-memory implementation of domain.EntityStore
// for testing, with call counters for the index-sensitive operations.
type MockEntityStore struct {
	mu           sync.RWMutex
	stocks       map[string]*domain.Stock
	putCalls     int
	reindexCalls int
}

// NewMockEntityStore creates a new mock entity store.
func NewMockEntityStore() *MockEntityStore {
	return &MockEntityStore{stocks: make(map[string]*domain.Stock)}
}

func (m *MockEntityStore) Put(stock *domain.Stock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	m.stocks[stock.Ticker] = stock.Clone()
	return nil
}

func (m *MockEntityStore) Get(ticker string) (*domain.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stock, ok := m.stocks[ticker]
	if !ok {
		return nil, domain.NotFoundf("Stock %s not found.", ticker)
	}
	return stock.Clone(), nil
}

func (m *MockEntityStore) FetchAll() ([]*domain.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tickers := make([]string, 0, len(m.stocks))
	for ticker := range m.stocks {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	stocks := make([]*domain.Stock, 0, len(tickers))
	for _, ticker := range tickers {
		stocks = append(stocks, m.stocks[ticker].Clone())
	}
	return stocks, nil
}

func (m *MockEntityStore) FetchMany(tickers []string) ([]*domain.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stocks := make([]*domain.Stock, 0, len(tickers))
	for _, ticker := range tickers {
		stock, ok := m.stocks[ticker]
		if !ok {
			return nil, domain.NotFoundf("Stock %s not found.", ticker)
		}
		stocks = append(stocks, stock.Clone())
	}
	return stocks, nil
}

func (m *MockEntityStore) Delete(ticker string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stocks[ticker]; !ok {
		return domain.NotFoundf("Stock %s not found.", ticker)
	}
	delete(m.stocks, ticker)
	return nil
}

func (m *MockEntityStore) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stocks), nil
}

func (m *MockEntityStore) RebuildIndex() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reindexCalls++
	return nil
}

func (m *MockEntityStore) SearchNames(query string) ([]*domain.Stock, error) {
	return nil, nil
}

func (m *MockEntityStore) ExportTo(w io.Writer) error {
	return nil
}

func (m *MockEntityStore) ImportFrom(r io.Reader) (int, error) {
	return 0, nil
}

// GetPutCalls returns how many times Put was called.
func (m *MockEntityStore) GetPutCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.putCalls
}

// GetReindexCalls returns how many times RebuildIndex was called.
func (m *MockEntityStore) GetReindexCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reindexCalls
}
