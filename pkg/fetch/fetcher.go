// Package fetch implements the Morningstar enrichment pipeline: it retrieves
// the stock report page for every stock that has a Morningstar ID, extracts
// the rating attributes, writes them through the repository's non-reindexing
// update, and rebuilds the search index once per batch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://tools.morningstar.co.uk/uk/stockreport/default.aspx"

// userAgent mirrors a desktop browser; the report page serves a reduced
// variant to unknown clients.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ReportFetcher retrieves the raw stock report page for a Morningstar ID.
type ReportFetcher interface {
	FetchReport(ctx context.Context, morningstarID string) (string, error)
}

// MorningstarClient fetches report pages over plain HTTP.
type MorningstarClient struct {
	baseURL string
	client  *http.Client
}

// NewMorningstarClient creates a client with the given timeout. An empty
// baseURL selects the production endpoint.
func NewMorningstarClient(baseURL string, timeout time.Duration) *MorningstarClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &MorningstarClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchReport downloads the report page for one Morningstar ID.
func (c *MorningstarClient) FetchReport(ctx context.Context, morningstarID string) (string, error) {
	url := fmt.Sprintf("%s?Site=us&id=%s&LanguageId=en-US&SecurityToken=%s]3]0]E0WWE$$ALL",
		c.baseURL, morningstarID, morningstarID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch report for %s: %w", morningstarID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("report fetch for %s returned status %s", morningstarID, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read report for %s: %w", morningstarID, err)
	}
	return string(body), nil
}
