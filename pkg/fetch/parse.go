package fetch

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// The report page is scraped with loose patterns anchored on stable labels.
// A pattern that stops matching leaves the field unset; resilience against
// page drift is out of scope.
var (
	industryPattern      = regexp.MustCompile(`(?s)Industry\s*</h3>\s*([^<]+)`)
	styleBoxPattern      = regexp.MustCompile(`(?s)Stock Style\s*</h3>\s*([A-Za-z]+)\s*-\s*([A-Za-z]+)`)
	starRatingPattern    = regexp.MustCompile(`class="starsImg"[^>]*alt="\s*(\d)`)
	dividendYieldPattern = regexp.MustCompile(`(?s)Dividend Yield\s*%?\s*</[^>]+>\s*<[^>]+>\s*([\d.]+|-)`)
	priceEarningPattern  = regexp.MustCompile(`(?s)Price/Earnings\s*</[^>]+>\s*<[^>]+>\s*([\d.]+|-)`)
	nonAlphanumeric      = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// parseIndustry extracts the industry label and collapses it into the enum
// form ("Farm & Heavy Construction Machinery" -> FarmHeavyConstructionMachinery).
func parseIndustry(page string) (domain.Industry, bool) {
	m := industryPattern.FindStringSubmatch(page)
	if m == nil {
		return "", false
	}
	code := nonAlphanumeric.ReplaceAllString(strings.TrimSpace(m[1]), "")
	industry, err := domain.ParseIndustry(code)
	if err != nil {
		return "", false
	}
	return industry, true
}

// parseSizeStyle extracts the style box, e.g. "Large-Growth".
func parseSizeStyle(page string) (domain.Size, domain.Style, bool) {
	m := styleBoxPattern.FindStringSubmatch(page)
	if m == nil {
		return "", "", false
	}
	size, err := domain.ParseSize(m[1])
	if err != nil {
		return "", "", false
	}
	style, err := domain.ParseStyle(m[2])
	if err != nil {
		return "", "", false
	}
	return size, style, true
}

// parseStarRating extracts the star rating from the rating image alt text.
// An unrated stock reports 0 stars.
func parseStarRating(page string) (*int, bool) {
	m := starRatingPattern.FindStringSubmatch(page)
	if m == nil {
		return nil, false
	}
	rating, err := strconv.Atoi(m[1])
	if err != nil || rating < 0 || rating > 5 {
		return nil, false
	}
	return &rating, true
}

func parseFloatCell(pattern *regexp.Regexp, page string) (*float64, bool) {
	m := pattern.FindStringSubmatch(page)
	if m == nil {
		return nil, false
	}
	if m[1] == "-" {
		// The page renders a dash for metrics it has no value for.
		return nil, true
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value < 0 {
		return nil, false
	}
	return &value, true
}

// parseDividendYield extracts the dividend yield percentage.
func parseDividendYield(page string) (*float64, bool) {
	return parseFloatCell(dividendYieldPattern, page)
}

// parsePriceEarning extracts the price/earnings ratio.
func parsePriceEarning(page string) (*float64, bool) {
	return parseFloatCell(priceEarningPattern, page)
}
