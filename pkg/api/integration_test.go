package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
	"github.com/adfharrison1/stock-tracker/pkg/query"
	"github.com/adfharrison1/stock-tracker/pkg/repository"
	"github.com/adfharrison1/stock-tracker/pkg/store"
)

// TestServer wires a real store and repository behind an HTTP server for
// end-to-end tests.
type TestServer struct {
	Server  *httptest.Server
	Store   *store.Store
	Repo    *repository.Repository
	BaseURL string
}

// NewTestServer creates a test server over a temporary database file.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	st, err := store.Open(store.WithDataDir(t.TempDir()), store.WithFileName("integration.db"))
	require.NoError(t, err)

	repo := repository.New(st)
	handler := NewHandler(repo, nil, nil)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		st.Close()
	})

	return &TestServer{
		Server:  server,
		Store:   st,
		Repo:    repo,
		BaseURL: server.URL,
	}
}

func (ts *TestServer) do(t *testing.T, method, path string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.BaseURL+path, body)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (ts *TestServer) listResult(t *testing.T, path string) *query.Result {
	t.Helper()
	resp := ts.do(t, "GET", path, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result query.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return &result
}

func TestIntegration_SeedListDelete(t *testing.T) {
	ts := NewTestServer(t)

	// Seed the example dataset.
	resp := ts.do(t, "PUT", "/api/stock/fillWithExampleData", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	result := ts.listResult(t, "/api/stock/list")
	assert.Equal(t, 10, result.Count)
	assert.Len(t, result.Stocks, 10)

	// Delete one stock.
	resp = ts.do(t, "DELETE", "/api/stock/exampleAAPL", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	result = ts.listResult(t, "/api/stock/list")
	assert.Equal(t, 9, result.Count)

	// Deleting it again fails with the canonical message.
	resp = ts.do(t, "DELETE", "/api/stock/exampleAAPL", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	resp.Body.Close()
	assert.Equal(t, "Stock exampleAAPL not found.", errResp.Message)
}

func TestIntegration_SeedIsIdempotent(t *testing.T) {
	ts := NewTestServer(t)

	for i := 0; i < 2; i++ {
		resp := ts.do(t, "PUT", "/api/stock/fillWithExampleData", nil)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	result := ts.listResult(t, "/api/stock/list")
	assert.Equal(t, 10, result.Count)
}

func TestIntegration_FilterSortPaginate(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.do(t, "PUT", "/api/stock/fillWithExampleData", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// US stocks only.
	result := ts.listResult(t, "/api/stock/list?country=US")
	for _, stock := range result.Stocks {
		assert.Equal(t, domain.CountryUS, stock.Country)
	}
	assert.Less(t, result.Count, 10)

	// Sorted by size descending: every Large before every Mid before every
	// Small.
	result = ts.listResult(t, "/api/stock/list?sortBy=size&sortDesc=true")
	lastOrdinal := 4
	for _, stock := range result.Stocks {
		ordinal := stock.Size.Ordinal()
		assert.LessOrEqual(t, ordinal, lastOrdinal)
		lastOrdinal = ordinal
	}

	// Pagination leaves the count untouched.
	result = ts.listResult(t, "/api/stock/list?offset=4&count=3")
	assert.Equal(t, 10, result.Count)
	assert.Len(t, result.Stocks, 3)
}

func TestIntegration_SearchSeesSeededStocks(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.do(t, "PUT", "/api/stock/fillWithExampleData", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.do(t, "GET", "/api/stock/search?q=apple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stocks []*domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stocks))
	resp.Body.Close()

	require.NotEmpty(t, stocks)
	assert.Equal(t, "exampleAAPL", stocks[0].Ticker)
}

func TestIntegration_DetailsRoundTrip(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.do(t, "PUT", "/api/stock/fillWithExampleData", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.do(t, "GET", "/api/stock/details/exampleAAPL,exampleTSM", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stocks []*domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stocks))
	resp.Body.Close()

	require.Len(t, stocks, 2)
	assert.Equal(t, "exampleAAPL", stocks[0].Ticker)
	assert.Equal(t, "exampleTSM", stocks[1].Ticker)
}

func TestIntegration_ExportImport(t *testing.T) {
	src := NewTestServer(t)

	resp := src.do(t, "PUT", "/api/stock/fillWithExampleData", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = src.do(t, "GET", "/api/stock/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	snapshot, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	dst := NewTestServer(t)
	resp = dst.do(t, "PUT", "/api/stock/import", bytes.NewReader(snapshot))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var imported map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&imported))
	resp.Body.Close()
	assert.Equal(t, 10, imported["imported"])

	result := dst.listResult(t, "/api/stock/list")
	assert.Equal(t, 10, result.Count)

	// The imported records are searchable without a manual reindex.
	resp = dst.do(t, "GET", "/api/stock/search?q=apple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stocks []*domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stocks))
	resp.Body.Close()
	assert.NotEmpty(t, stocks)
}

func TestIntegration_UnknownRouteIs404(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.do(t, "GET", "/api/nope", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIntegration_LargeDatasetPagination(t *testing.T) {
	ts := NewTestServer(t)

	stocks := make([]*domain.Stock, 0, 50)
	for i := 0; i < 50; i++ {
		stocks = append(stocks, &domain.Stock{
			Ticker:  fmt.Sprintf("BULK%03d", i),
			Name:    fmt.Sprintf("Bulk Company %03d", i),
			Country: domain.CountryUS,
		})
	}
	created, err := ts.Repo.BulkInsert(stocks)
	require.NoError(t, err)
	require.Equal(t, 50, created)

	result := ts.listResult(t, "/api/stock/list?offset=45&count=10")
	assert.Equal(t, 50, result.Count)
	assert.Len(t, result.Stocks, 5)
	assert.Equal(t, "BULK045", result.Stocks[0].Ticker)
}
