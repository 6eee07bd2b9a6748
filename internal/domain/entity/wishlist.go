package entity

// WishlistItem is a wishlist entry keyed by product id. The display
// fields are snapshotted from the product at add time.
type WishlistItem struct {
	ProductID     int     `json:"product_id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discount_price"`
	InStock       bool    `json:"in_stock"`
}
