package entity

// CartItem is a single cart line. Its uniqueness key is the composite
// identity (ProductID, Size, Color); the cart holds at most one line
// per identity.
type CartItem struct {
	ProductID     int     `json:"product_id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Image         string  `json:"image"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discount_price"`
}

// Matches reports whether the line carries the given composite identity.
func (i *CartItem) Matches(productID int, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Subtotal is the amount charged for this line.
func (i *CartItem) Subtotal() float64 {
	return i.DiscountPrice * float64(i.Quantity)
}
