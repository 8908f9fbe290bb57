package fetch

import (
	"context"
	"log"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// Pipeline drives enrichment runs against the repository.
type Pipeline struct {
	repo    domain.StockRepository
	fetcher ReportFetcher
}

// NewPipeline creates an enrichment pipeline.
func NewPipeline(repo domain.StockRepository, fetcher ReportFetcher) *Pipeline {
	return &Pipeline{repo: repo, fetcher: fetcher}
}

// EnrichOne enriches a single stock by ticker. The stock must exist and carry
// a Morningstar ID. One reindex follows the update, since this is a
// single-record write whose staleness would be observable.
func (p *Pipeline) EnrichOne(ctx context.Context, ticker string) error {
	stock, err := p.repo.ReadByTicker(ticker)
	if err != nil {
		return err
	}
	if stock.MorningstarID == "" {
		return domain.NotFoundf("Stock %s does not have a Morningstar ID.", ticker)
	}
	if err := p.enrich(ctx, stock); err != nil {
		return err
	}
	return p.repo.Reindex()
}

// EnrichAll enriches every stock that has a Morningstar ID. Updates go through
// the non-reindexing write; exactly one reindex runs after the batch, no
// matter how many stocks were touched. A failing stock is logged and skipped
// so one upstream hiccup does not abort the batch. Returns the number of
// stocks updated and the number eligible.
func (p *Pipeline) EnrichAll(ctx context.Context) (updated, eligible int, err error) {
	stocks, err := p.repo.ListAll()
	if err != nil {
		return 0, 0, err
	}

	for _, stock := range stocks {
		if stock.MorningstarID == "" {
			continue
		}
		eligible++
		if err := ctx.Err(); err != nil {
			return updated, eligible, err
		}
		if err := p.enrich(ctx, stock); err != nil {
			log.Printf("WARN: Failed to enrich stock %s: %v", stock.Ticker, err)
			continue
		}
		updated++
	}

	if eligible == 0 {
		return 0, 0, nil
	}
	return updated, eligible, p.repo.Reindex()
}

// enrich fetches and parses the report page for one stock and writes the
// extracted attributes through the non-reindexing update. Fields the page
// does not yield are cleared rather than left stale; each miss is logged.
func (p *Pipeline) enrich(ctx context.Context, stock *domain.Stock) error {
	page, err := p.fetcher.FetchReport(ctx, stock.MorningstarID)
	if err != nil {
		return domain.UpstreamFailuref("failed to fetch Morningstar data for %s: %v", stock.Ticker, err)
	}

	attrs := domain.StockAttributes{
		Country:       stock.Country,
		MorningstarID: stock.MorningstarID,
	}

	if industry, ok := parseIndustry(page); ok {
		attrs.Industry = industry
	} else {
		log.Printf("WARN: Stock %s: unable to extract industry", stock.Ticker)
	}
	if size, style, ok := parseSizeStyle(page); ok {
		attrs.Size = size
		attrs.Style = style
	} else {
		log.Printf("WARN: Stock %s: unable to extract size and style", stock.Ticker)
	}
	if rating, ok := parseStarRating(page); ok {
		attrs.StarRating = rating
	} else {
		log.Printf("WARN: Stock %s: unable to extract star rating", stock.Ticker)
	}
	if yield, ok := parseDividendYield(page); ok {
		attrs.DividendYieldPercent = yield
	} else {
		log.Printf("WARN: Stock %s: unable to extract dividend yield", stock.Ticker)
	}
	if ratio, ok := parsePriceEarning(page); ok {
		attrs.PriceEarningRatio = ratio
	} else {
		log.Printf("WARN: Stock %s: unable to extract price/earnings ratio", stock.Ticker)
	}

	return p.repo.UpdateAttributes(stock.Ticker, attrs)
}
