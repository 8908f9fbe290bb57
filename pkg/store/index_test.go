package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

func TestSearchNames(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(&domain.Stock{Ticker: "AAPL", Name: "Apple Inc"}))
	require.NoError(t, s.Put(&domain.Stock{Ticker: "TSM", Name: "Taiwan Semiconductor Manufacturing"}))
	require.NoError(t, s.Put(&domain.Stock{Ticker: "ALIZF", Name: "Allianz SE"}))
	require.NoError(t, s.RebuildIndex())

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"full word", "apple", []string{"AAPL"}},
		{"prefix", "semicond", []string{"TSM"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stocks, err := s.SearchNames(tt.query)
			require.NoError(t, err)

			tickers := make([]string, 0, len(stocks))
			for _, stock := range stocks {
				tickers = append(tickers, stock.Ticker)
			}
			if tt.expected == nil {
				assert.Empty(t, tickers)
			} else {
				assert.Equal(t, tt.expected, tickers)
			}
		})
	}
}

func TestSearchNames_WritesInvisibleUntilReindex(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(&domain.Stock{Ticker: "AAPL", Name: "Apple Inc"}))

	// Put never touches the index; the store was opened over an empty record
	// set, so the index is still empty.
	stocks, err := s.SearchNames("apple")
	require.NoError(t, err)
	assert.Empty(t, stocks)

	require.NoError(t, s.RebuildIndex())

	stocks, err = s.SearchNames("apple")
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, "AAPL", stocks[0].Ticker)
}

func TestSearchNames_StaleHitsDropped(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(&domain.Stock{Ticker: "AAPL", Name: "Apple Inc"}))
	require.NoError(t, s.RebuildIndex())
	require.NoError(t, s.Delete("AAPL"))

	// The record is gone but the index still carries the hit; it must be
	// dropped, not surfaced as an error.
	stocks, err := s.SearchNames("apple")
	require.NoError(t, err)
	assert.Empty(t, stocks)
}
