// Package query implements the stock query engine: a typed query
// specification parsed once at the HTTP boundary, and a pure
// filter/count/sort/paginate pipeline over a materialized snapshot of the
// collection.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// SortField names an attribute the result can be ordered by.
type SortField string

const (
	SortNone                 SortField = ""
	SortName                 SortField = "name"
	SortSize                 SortField = "size"
	SortStyle                SortField = "style"
	SortStarRating           SortField = "starRating"
	SortDividendYieldPercent SortField = "dividendYieldPercent"
	SortPriceEarningRatio    SortField = "priceEarningRatio"
)

var sortFields = map[SortField]bool{
	SortName:                 true,
	SortSize:                 true,
	SortStyle:                true,
	SortStarRating:           true,
	SortDividendYieldPercent: true,
	SortPriceEarningRatio:    true,
}

// Spec is a validated, normalized query. Filter sets hold raw strings on
// purpose: a value that names no known enum member simply matches nothing,
// which is the required behavior for unknown filter values.
type Spec struct {
	Name       string
	Countries  map[string]bool
	Industries map[string]bool
	Sizes      map[string]bool
	Styles     map[string]bool
	SortBy     SortField
	SortDesc   bool
	Offset     int
	Count      *int
}

// parseSet collects a multi-value parameter. Both repeated parameters
// (country=US&country=DE) and comma lists (country=US,DE) are accepted; the
// original API inferred arrays dynamically, here the shape is normalized once.
func parseSet(values url.Values, key string) map[string]bool {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	set := make(map[string]bool)
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = true
			}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// Parse builds a Spec from raw query parameters. Offset follows the lenient
// legacy contract (non-numeric or negative collapses to 0); everything else
// that is malformed is a BadRequest.
func Parse(values url.Values) (*Spec, error) {
	spec := &Spec{
		Name:       values.Get("name"),
		Countries:  parseSet(values, "country"),
		Industries: parseSet(values, "industry"),
		Sizes:      parseSet(values, "size"),
		Styles:     parseSet(values, "style"),
	}

	if raw := values.Get("sortBy"); raw != "" {
		field := SortField(raw)
		if !sortFields[field] {
			return nil, domain.BadRequestf("unknown sortBy %q", raw)
		}
		spec.SortBy = field
	}

	if raw := values.Get("sortDesc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domain.BadRequestf("invalid sortDesc %q", raw)
		}
		spec.SortDesc = desc
	}

	if raw := values.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			spec.Offset = offset
		}
	}

	if raw := values.Get("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			return nil, domain.BadRequestf("invalid count %q", raw)
		}
		spec.Count = &count
	}

	return spec, nil
}
