package domain

type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortRating    SortMode = "rating"
	SortNewest    SortMode = "newest"
)

// FilterState is a pure value object describing the product listing filters.
// Empty criteria are pass-through, never "match nothing".
type FilterState struct {
	Search     string     `json:"search"`
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	PriceRange [2]float64 `json:"price_range"`
	Sizes      []string   `json:"sizes"`
	Ratings    []float64  `json:"ratings"`
	SortBy     SortMode   `json:"sort_by"`
}
