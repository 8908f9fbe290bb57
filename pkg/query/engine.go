package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// Result is the outcome of a query: the ordered page of stocks plus the total
// number of records that passed the filters, counted before pagination.
type Result struct {
	Stocks []*domain.Stock `json:"stocks"`
	Count  int             `json:"count"`
}

// Run executes the query over a snapshot of the collection. The pipeline
// order is fixed: filter, count, sort, paginate. The input slice is not
// modified; an empty result is a valid, successful outcome.
func Run(stocks []*domain.Stock, spec *Spec) *Result {
	filtered := make([]*domain.Stock, 0, len(stocks))
	for _, stock := range stocks {
		if matches(stock, spec) {
			filtered = append(filtered, stock)
		}
	}

	// Total is fixed here so pagination never affects the reported count.
	total := len(filtered)

	if spec.SortBy != SortNone {
		sortStocks(filtered, spec.SortBy)
		if spec.SortDesc {
			// Reverse the sorted slice instead of negating the comparator, so
			// equal-key elements keep the same relative order in both
			// directions.
			for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
				filtered[i], filtered[j] = filtered[j], filtered[i]
			}
		}
	}

	start := spec.Offset
	if start > total {
		start = total
	}
	end := total
	if spec.Count != nil && start+*spec.Count < end {
		end = start + *spec.Count
	}

	return &Result{Stocks: filtered[start:end], Count: total}
}

// matches is the conjunction of all present filter predicates: every filter
// dimension must pass, and within one dimension any set member may match.
func matches(stock *domain.Stock, spec *Spec) bool {
	if spec.Name != "" &&
		!strings.Contains(strings.ToLower(stock.Name), strings.ToLower(spec.Name)) {
		return false
	}
	if spec.Countries != nil && !spec.Countries[string(stock.Country)] {
		return false
	}
	if spec.Industries != nil && !spec.Industries[string(stock.Industry)] {
		return false
	}
	if spec.Sizes != nil && !spec.Sizes[string(stock.Size)] {
		return false
	}
	if spec.Styles != nil && !spec.Styles[string(stock.Style)] {
		return false
	}
	return true
}

// sortStocks orders the slice ascending by the given field, stably, so that
// ties keep the snapshot's ticker order. Unset numeric metrics rank lowest:
// they sort first ascending and last descending.
func sortStocks(stocks []*domain.Stock, field SortField) {
	var less func(a, b *domain.Stock) bool

	switch field {
	case SortName:
		collator := collate.New(language.English, collate.IgnoreCase)
		less = func(a, b *domain.Stock) bool {
			return collator.CompareString(a.Name, b.Name) < 0
		}
	case SortSize:
		less = func(a, b *domain.Stock) bool {
			return a.Size.Ordinal() < b.Size.Ordinal()
		}
	case SortStyle:
		less = func(a, b *domain.Stock) bool {
			return a.Style.Ordinal() < b.Style.Ordinal()
		}
	case SortStarRating:
		less = func(a, b *domain.Stock) bool {
			return metricLess(intMetric(a.StarRating), intMetric(b.StarRating))
		}
	case SortDividendYieldPercent:
		less = func(a, b *domain.Stock) bool {
			return metricLess(a.DividendYieldPercent, b.DividendYieldPercent)
		}
	case SortPriceEarningRatio:
		less = func(a, b *domain.Stock) bool {
			return metricLess(a.PriceEarningRatio, b.PriceEarningRatio)
		}
	default:
		return
	}

	sort.SliceStable(stocks, func(i, j int) bool {
		return less(stocks[i], stocks[j])
	})
}

func intMetric(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// metricLess compares two optional metrics ascending with nil as the lowest
// possible value.
func metricLess(a, b *float64) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return *a < *b
	}
}
