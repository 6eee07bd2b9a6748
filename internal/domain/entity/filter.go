package entity

// SortKey enumerates the supported catalog sort orders.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortDiscount  SortKey = "discount"
)

// ValidSortKey reports whether s is one of the supported sort orders.
func ValidSortKey(s SortKey) bool {
	switch s {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating, SortDiscount:
		return true
	}
	return false
}

// PriceRange is an inclusive bound on the effective display price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpec is the set of active filter and sort criteria applied to
// the catalog. Empty sets and a nil price range impose no constraint.
type FilterSpec struct {
	Categories []string    `json:"categories"`
	Brands     []string    `json:"brands"`
	Sizes      []string    `json:"sizes"`
	Colors     []string    `json:"colors"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	SortBy     SortKey     `json:"sort_by"`
}

// DefaultFilterSpec is the documented reset state: no set constraints,
// price range 0-10000, newest first.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Categories: []string{},
		Brands:     []string{},
		Sizes:      []string{},
		Colors:     []string{},
		PriceRange: &PriceRange{Min: 0, Max: 10000},
		SortBy:     SortNewest,
	}
}

// ActiveFilterCount is the sum of the four constraint set sizes. The
// price range and sort order are excluded from the count.
func (f *FilterSpec) ActiveFilterCount() int {
	return len(f.Categories) + len(f.Brands) + len(f.Sizes) + len(f.Colors)
}
