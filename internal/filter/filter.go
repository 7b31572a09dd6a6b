// Package filter narrows and orders the product catalog according to a
// FilterState. All stages are conjunctive and the sort is stable, so
// relevance order is simply catalog order after filtering.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/priya1793/shopverse/internal/domain"
)

// DefaultPriceCeiling is the upper bound of the default price range.
const DefaultPriceCeiling = 1000

// DefaultFilters returns the pass-through filter state used when the listing
// view is entered without any pre-seeded criteria.
func DefaultFilters() domain.FilterState {
	return domain.FilterState{
		PriceRange: [2]float64{0, DefaultPriceCeiling},
		SortBy:     domain.SortRelevance,
	}
}

// Apply runs the filter stages in fixed order (search, categories, brands,
// price, sizes, ratings) and then sorts. The catalog slice is not modified.
func Apply(catalog []domain.Product, f domain.FilterState) []domain.Product {
	result := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, f) {
			result = append(result, p)
		}
	}
	sortProducts(result, f.SortBy)
	return result
}

func matches(p domain.Product, f domain.FilterState) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}
	if len(f.Sizes) > 0 && !anyOverlap(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Ratings) > 0 && p.Rating < minOf(f.Ratings) {
		return false
	}
	return true
}

// matchesSearch reports whether the query is a case-insensitive substring of
// the product name, description, brand, or any tag.
func matchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, mode domain.SortMode) {
	switch mode {
	case domain.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortNewest:
		// Numeric id descending stands in for recency.
		sort.SliceStable(products, func(i, j int) bool {
			return numericID(products[i].ID) > numericID(products[j].ID)
		})
	default:
		// Relevance keeps catalog order.
	}
}

// Related returns up to limit other catalog entries sharing the product's
// category or brand, in catalog order.
func Related(catalog []domain.Product, p domain.Product, limit int) []domain.Product {
	var result []domain.Product
	for _, other := range catalog {
		if len(result) >= limit {
			break
		}
		if other.ID == p.ID {
			continue
		}
		if other.Category == p.Category || other.Brand == p.Brand {
			result = append(result, other)
		}
	}
	return result
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func anyOverlap(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
