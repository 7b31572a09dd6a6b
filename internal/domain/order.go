package domain

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Next returns the following status in the forward-only lifecycle and whether
// a transition is still possible.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusProcessing:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	default:
		return s, false
	}
}

type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// Order is a frozen snapshot of the cart taken at checkout completion.
// Everything but Status is immutable once placed.
type Order struct {
	ID              string          `json:"id"`
	Items           []CartItem      `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Shipping        float64         `json:"shipping"`
	Discount        float64         `json:"discount"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	Date            string          `json:"date"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	DeliveryMethod  string          `json:"delivery_method"`
	PaymentMethod   string          `json:"payment_method"`
}
