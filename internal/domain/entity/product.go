package entity

// Product is the display model for a catalog product. Instances are
// read-only snapshots sourced from the backend record service.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	InStock       bool     `json:"in_stock"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
}

// EffectivePrice is the price actually charged: the discount price when
// present and lower than the list price, else the list price. A nil
// DiscountPrice means "no discount", never "free".
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasDiscount reports whether a discount currently applies.
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice < p.Price
}

// DiscountPercent computes the discount percentage from the list and
// discount prices. Products without an applicable discount report 0.
func (p *Product) DiscountPercent() float64 {
	if !p.HasDiscount() || p.Price <= 0 {
		return 0
	}
	return (p.Price - *p.DiscountPrice) / p.Price * 100
}
