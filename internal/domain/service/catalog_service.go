package service

import (
	"sort"
	"strings"

	"stylehub/internal/domain/entity"
)

// The catalog engine is a pure function of (collection, spec). It never
// mutates its input slice; filter and sort passes build a new one.

const (
	featuredMinRating = 4.5
	featuredLimit     = 8
	similarLimit      = 4
)

// QueryProducts applies the filter pass then the sort pass. Constraint
// sets that are empty impose no constraint; a price range with min
// greater than max matches nothing.
func QueryProducts(products []*entity.Product, spec entity.FilterSpec) []*entity.Product {
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if matchesSpec(p, spec) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, spec.SortBy)
	return filtered
}

func matchesSpec(p *entity.Product, spec entity.FilterSpec) bool {
	if len(spec.Categories) > 0 && !matchesCategory(p, spec.Categories) {
		return false
	}
	if len(spec.Brands) > 0 && !containsString(spec.Brands, p.Brand) {
		return false
	}
	if len(spec.Sizes) > 0 && !intersects(p.Sizes, spec.Sizes) {
		return false
	}
	if len(spec.Colors) > 0 && !intersects(p.Colors, spec.Colors) {
		return false
	}
	if spec.PriceRange != nil {
		price := p.EffectivePrice()
		if price < spec.PriceRange.Min || price > spec.PriceRange.Max {
			return false
		}
	}
	return true
}

// matchesCategory matches a requested category against the product's
// category or subcategory, case-insensitively, with substring semantics
// so "shirt" also matches "t-shirts".
func matchesCategory(p *entity.Product, categories []string) bool {
	category := strings.ToLower(p.Category)
	subcategory := strings.ToLower(p.Subcategory)
	for _, c := range categories {
		c = strings.ToLower(c)
		if strings.Contains(category, c) || strings.Contains(subcategory, c) {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range b {
		if containsString(a, v) {
			return true
		}
	}
	return false
}

// sortProducts orders the slice in place. The sort is stable: ties keep
// their prior relative order, and an unknown or empty key leaves the
// input order untouched.
func sortProducts(products []*entity.Product, key entity.SortKey) {
	switch key {
	case entity.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case entity.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case entity.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case entity.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case entity.SortDiscount:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountPercent() > products[j].DiscountPercent()
		})
	}
}

// SearchProducts performs a case-insensitive substring match against
// name, brand, category, subcategory and description. An empty or
// whitespace-only query returns an empty result list; this is the
// product's contract, not an absence of filtering. Result order is
// input order.
func SearchProducts(products []*entity.Product, query string) []*entity.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []*entity.Product{}
	}

	matched := make([]*entity.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Subcategory), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FeaturedProducts returns the first products rated at or above the
// featured threshold, in input order, capped to eight.
func FeaturedProducts(products []*entity.Product) []*entity.Product {
	featured := make([]*entity.Product, 0, featuredLimit)
	for _, p := range products {
		if p.Rating >= featuredMinRating {
			featured = append(featured, p)
			if len(featured) == featuredLimit {
				break
			}
		}
	}
	return featured
}

// SimilarProducts returns up to four products sharing the given
// category, excluding the product itself, in input order.
func SimilarProducts(products []*entity.Product, productID int, category string) []*entity.Product {
	similar := make([]*entity.Product, 0, similarLimit)
	for _, p := range products {
		if p.ID != productID && p.Category == category {
			similar = append(similar, p)
			if len(similar) == similarLimit {
				break
			}
		}
	}
	return similar
}

// AllBrands returns the distinct brands in the catalog, sorted.
func AllBrands(products []*entity.Product) []string {
	return distinctSorted(products, func(p *entity.Product) []string {
		return []string{p.Brand}
	})
}

// AllCategories returns the distinct categories and subcategories in
// the catalog, merged and sorted.
func AllCategories(products []*entity.Product) []string {
	return distinctSorted(products, func(p *entity.Product) []string {
		return []string{p.Category, p.Subcategory}
	})
}

func distinctSorted(products []*entity.Product, pick func(*entity.Product) []string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, p := range products {
		for _, v := range pick(p) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}
