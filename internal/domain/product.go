package domain

// Color is a named swatch offered for a product.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product is an immutable catalog entry. IDs are numeric strings; the
// "newest" sort compares them numerically.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	OriginalPrice    float64  `json:"original_price,omitempty"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Category         string   `json:"category"`
	Brand            string   `json:"brand"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	Image            string   `json:"image"`
	Images           []string `json:"images,omitempty"`
	Sizes            []string `json:"sizes,omitempty"`
	Colors           []Color  `json:"colors,omitempty"`
	InStock          bool     `json:"in_stock"`
	Tags             []string `json:"tags,omitempty"`
	Featured         bool     `json:"featured,omitempty"`
	Trending         bool     `json:"trending,omitempty"`
}

// Category describes a storefront category tile.
type Category struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
	Image        string `json:"image"`
}

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

// Coupon is a named discount rule, either percentage-of-subtotal or a fixed
// amount, optionally gated by a minimum subtotal.
type Coupon struct {
	Code     string     `json:"code"`
	Type     CouponType `json:"type"`
	Value    float64    `json:"value"`
	MinOrder float64    `json:"min_order,omitempty"`
}
