package store

import (
	"fmt"
	"log"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// indexDocument is the projection of a stock that gets indexed. Only the
// fields the search surface needs are included.
type indexDocument struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Industry string `json:"industry"`
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	stockMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = true
	textFieldMapping.Index = true
	stockMapping.AddFieldMappingsAt("name", textFieldMapping)

	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	stockMapping.AddFieldMappingsAt("country", keywordFieldMapping)
	stockMapping.AddFieldMappingsAt("industry", keywordFieldMapping)

	indexMapping.AddDocumentMapping("_default", stockMapping)
	return indexMapping
}

// RebuildIndex rebuilds the derived search index from the full current record
// set and atomically swaps it in. It is idempotent and safe to call
// concurrently (last write wins). It never changes any stock record.
func (s *Store) RebuildIndex() error {
	stocks, err := s.FetchAll()
	if err != nil {
		return fmt.Errorf("failed to read records for reindex: %w", err)
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	batch := index.NewBatch()
	for _, stock := range stocks {
		doc := indexDocument{
			Name:     stock.Name,
			Country:  string(stock.Country),
			Industry: string(stock.Industry),
		}
		if err := batch.Index(stock.Ticker, doc); err != nil {
			index.Close()
			return fmt.Errorf("failed to add %s to index batch: %w", stock.Ticker, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return fmt.Errorf("failed to execute index batch: %w", err)
	}

	s.indexMu.Lock()
	old := s.index
	s.index = index
	s.indexMu.Unlock()
	if old != nil {
		old.Close()
	}

	log.Printf("INFO: Search index rebuilt (%d stocks indexed)", len(stocks))
	return nil
}

// SearchNames runs a full-text query against the name field of the current
// index snapshot and resolves the hits back to stock records. Hits whose
// record has been deleted since the last reindex are silently dropped - the
// index is a derived projection, never a source of truth.
func (s *Store) SearchNames(query string) ([]*domain.Stock, error) {
	s.indexMu.RLock()
	index := s.index
	s.indexMu.RUnlock()
	if index == nil {
		return nil, fmt.Errorf("search index not built")
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetField("name")
	matchQuery.SetBoost(3.0)

	prefixQuery := bleve.NewPrefixQuery(query)
	prefixQuery.SetField("name")
	prefixQuery.SetBoost(2.0)

	wildcardQuery := bleve.NewWildcardQuery("*" + query + "*")
	wildcardQuery.SetField("name")

	searchRequest := bleve.NewSearchRequest(
		bleve.NewDisjunctionQuery(matchQuery, prefixQuery, wildcardQuery),
	)
	searchRequest.Size = 100

	searchResults, err := index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	stocks := make([]*domain.Stock, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		stock, err := s.Get(hit.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				continue // stale index entry
			}
			return nil, err
		}
		stocks = append(stocks, stock)
	}
	return stocks, nil
}
