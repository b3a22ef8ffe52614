package app

import (
	"slices"
	"strings"

	"github.com/dwikikusuma/soundshop/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type SortOrder string

const (
	SortNone SortOrder = ""
	SortLow  SortOrder = "low"
	SortHigh SortOrder = "high"
)

// PriceRange bounds are both inclusive.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

type Filter struct {
	Search   string
	Price    *PriceRange
	Category string
	Sort     SortOrder
}

// ParsePriceRange reads "min-max". Both parts must be decimal numbers; anything else is rejected.
func ParsePriceRange(s string) (PriceRange, bool) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return PriceRange{}, false
	}

	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if lo == "" || hi == "" {
		return PriceRange{}, false
	}

	lower, err := decimal.NewFromString(lo)
	if err != nil {
		return PriceRange{}, false
	}
	upper, err := decimal.NewFromString(hi)
	if err != nil {
		return PriceRange{}, false
	}

	return PriceRange{Min: lower, Max: upper}, true
}

// ParseFilter builds a Filter from raw query values. A malformed price range and an
// unknown sort key are dropped rather than reported.
func ParseFilter(search, price, category, sort string) Filter {
	f := Filter{
		Search:   search,
		Category: category,
	}

	if price != "" {
		if r, ok := ParsePriceRange(price); ok {
			f.Price = &r
		}
	}

	switch SortOrder(sort) {
	case SortLow, SortHigh:
		f.Sort = SortOrder(sort)
	}

	return f
}

// Query applies f to products and returns a new slice; products is left untouched.
func Query(products []domain.Product, f Filter) []domain.Product {
	search := strings.ToLower(f.Search)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Price != nil && !f.Price.Contains(p.Price) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortLow:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortHigh:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return b.Price.Cmp(a.Price)
		})
	}

	return out
}
