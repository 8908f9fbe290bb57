package api

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// MockStockRepository provides an in-memory implementation of
// domain.StockRepository for handler tests, with call counters for the
// index-sensitive operations.
type MockStockRepository struct {
	mu           sync.RWMutex
	stocks       map[string]*domain.Stock
	reindexCalls int
	failWith     error
}

// NewMockStockRepository creates a new mock repository.
func NewMockStockRepository() *MockStockRepository {
	return &MockStockRepository{stocks: make(map[string]*domain.Stock)}
}

// FailWith makes every subsequent call return the given error.
func (m *MockStockRepository) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *MockStockRepository) InsertIfAbsent(stock *domain.Stock) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if err := domain.ValidateStock(stock); err != nil {
		return false, err
	}
	if _, exists := m.stocks[stock.Ticker]; exists {
		return false, nil
	}
	m.stocks[stock.Ticker] = stock.Clone()
	return true, nil
}

func (m *MockStockRepository) InsertAndReindex(stock *domain.Stock) (bool, error) {
	created, err := m.InsertIfAbsent(stock)
	if err != nil {
		return created, err
	}
	return created, m.Reindex()
}

func (m *MockStockRepository) BulkInsert(stocks []*domain.Stock) (int, error) {
	created := 0
	for _, stock := range stocks {
		ok, err := m.InsertIfAbsent(stock)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, m.Reindex()
}

func (m *MockStockRepository) UpdateAttributes(ticker string, attrs domain.StockAttributes) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	stock, ok := m.stocks[ticker]
	if !ok {
		return domain.NotFoundf("Stock %s not found.", ticker)
	}
	stock.ApplyAttributes(attrs)
	return nil
}

func (m *MockStockRepository) DeleteByTicker(ticker string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.stocks[ticker]; !ok {
		return domain.NotFoundf("Stock %s not found.", ticker)
	}
	delete(m.stocks, ticker)
	return nil
}

func (m *MockStockRepository) Reindex() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.reindexCalls++
	return nil
}

func (m *MockStockRepository) ListAll() ([]*domain.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
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

func (m *MockStockRepository) ReadByTicker(ticker string) (*domain.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	stock, ok := m.stocks[ticker]
	if !ok {
		return nil, domain.NotFoundf("Stock %s not found.", ticker)
	}
	return stock.Clone(), nil
}

func (m *MockStockRepository) ReadMany(tickers []string) ([]*domain.Stock, error) {
	stocks := make([]*domain.Stock, 0, len(tickers))
	for _, ticker := range tickers {
		stock, err := m.ReadByTicker(ticker)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, stock)
	}
	return stocks, nil
}

func (m *MockStockRepository) SearchNames(query string) ([]*domain.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var stocks []*domain.Stock
	for _, stock := range m.stocks {
		if strings.Contains(strings.ToLower(stock.Name), strings.ToLower(query)) {
			stocks = append(stocks, stock.Clone())
		}
	}
	sort.Slice(stocks, func(i, j int) bool { return stocks[i].Ticker < stocks[j].Ticker })
	return stocks, nil
}

func (m *MockStockRepository) Export(w io.Writer) error {
	if m.failWith != nil {
		return m.failWith
	}
	_, err := w.Write([]byte("snapshot"))
	return err
}

func (m *MockStockRepository) Import(r io.Reader) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	m.mu.RLock()
	count := len(m.stocks)
	m.mu.RUnlock()
	return count, m.Reindex()
}

// GetReindexCalls returns how many times Reindex was called.
func (m *MockStockRepository) GetReindexCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reindexCalls
}

// GetStockCount returns the number of stored stocks.
func (m *MockStockRepository) GetStockCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stocks)
}
