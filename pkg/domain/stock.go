package domain

// Stock represents a single tracked equity. Ticker is the unique key and is
// immutable after creation, as is Name. Everything else is optional and stays
// unset until enrichment succeeds.
type Stock struct {
	Ticker               string   `json:"ticker" msgpack:"ticker"`
	Name                 string   `json:"name" msgpack:"name"`
	Country              Country  `json:"country,omitempty" msgpack:"country,omitempty"`
	Industry             Industry `json:"industry,omitempty" msgpack:"industry,omitempty"`
	Size                 Size     `json:"size,omitempty" msgpack:"size,omitempty"`
	Style                Style    `json:"style,omitempty" msgpack:"style,omitempty"`
	MorningstarID        string   `json:"morningstarId,omitempty" msgpack:"morningstarId,omitempty"`
	StarRating           *int     `json:"starRating,omitempty" msgpack:"starRating,omitempty"`
	DividendYieldPercent *float64 `json:"dividendYieldPercent,omitempty" msgpack:"dividendYieldPercent,omitempty"`
	PriceEarningRatio    *float64 `json:"priceEarningRatio,omitempty" msgpack:"priceEarningRatio,omitempty"`
}

// StockAttributes carries the mutable attribute fields of a stock. An update
// overwrites all of them at once: a nil/zero field clears the stored value
// rather than leaving it stale.
type StockAttributes struct {
	Country              Country  `json:"country,omitempty"`
	Industry             Industry `json:"industry,omitempty"`
	Size                 Size     `json:"size,omitempty"`
	Style                Style    `json:"style,omitempty"`
	MorningstarID        string   `json:"morningstarId,omitempty"`
	StarRating           *int     `json:"starRating,omitempty"`
	DividendYieldPercent *float64 `json:"dividendYieldPercent,omitempty"`
	PriceEarningRatio    *float64 `json:"priceEarningRatio,omitempty"`
}

// ApplyAttributes replaces every attribute field of the stock with the values
// from attrs. Ticker and Name are never touched.
func (s *Stock) ApplyAttributes(attrs StockAttributes) {
	s.Country = attrs.Country
	s.Industry = attrs.Industry
	s.Size = attrs.Size
	s.Style = attrs.Style
	s.MorningstarID = attrs.MorningstarID
	s.StarRating = attrs.StarRating
	s.DividendYieldPercent = attrs.DividendYieldPercent
	s.PriceEarningRatio = attrs.PriceEarningRatio
}

// Clone returns a deep copy of the stock so callers can mutate the result
// without affecting a shared snapshot.
func (s *Stock) Clone() *Stock {
	c := *s
	if s.StarRating != nil {
		v := *s.StarRating
		c.StarRating = &v
	}
	if s.DividendYieldPercent != nil {
		v := *s.DividendYieldPercent
		c.DividendYieldPercent = &v
	}
	if s.PriceEarningRatio != nil {
		v := *s.PriceEarningRatio
		c.PriceEarningRatio = &v
	}
	return &c
}
