package service

import (
	"testing"

	"stylehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discount(v float64) *float64 {
	return &v
}

func testCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID: 1, Name: "Classic Tee", Brand: "Northwind", Category: "Men",
			Subcategory: "T-Shirts", Description: "Soft cotton crew neck",
			Price: 100, DiscountPrice: discount(80), Rating: 4.6, InStock: true,
			Sizes: []string{"S", "M", "L"}, Colors: []string{"Red", "Blue"},
		},
		{
			ID: 2, Name: "Linen Shirt", Brand: "Harbor", Category: "Men",
			Subcategory: "Shirts", Description: "Breathable summer shirt",
			Price: 50, Rating: 4.9, InStock: true,
			Sizes: []string{"M", "L"}, Colors: []string{"White"},
		},
		{
			ID: 3, Name: "Denim Jacket", Brand: "Northwind", Category: "Women",
			Subcategory: "Jackets", Description: "Stonewashed denim",
			Price: 200, DiscountPrice: discount(150), Rating: 4.2, InStock: false,
			Sizes: []string{"S"}, Colors: []string{"Blue"},
		},
		{
			ID: 4, Name: "Running Shoes", Brand: "Velocity", Category: "Footwear",
			Subcategory: "Sneakers", Description: "Lightweight road runner",
			Price: 120, Rating: 3.9, InStock: true,
			Sizes: []string{"42", "43"}, Colors: []string{"Black", "White"},
		},
	}
}

func ids(products []*entity.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQueryEmptySpecIsIdentity(t *testing.T) {
	products := testCatalog()

	result := QueryProducts(products, entity.FilterSpec{})

	assert.Equal(t, ids(products), ids(result))
}

func TestQueryCategoryIsCaseInsensitiveSubstring(t *testing.T) {
	products := testCatalog()

	result := QueryProducts(products, entity.FilterSpec{Categories: []string{"shirt"}})

	// Matches both the T-Shirts and Shirts subcategories.
	assert.Equal(t, []int{1, 2}, ids(result))

	result = QueryProducts(products, entity.FilterSpec{Categories: []string{"WOMEN"}})
	assert.Equal(t, []int{3}, ids(result))
}

func TestQueryBrandIsExactOrMatch(t *testing.T) {
	products := testCatalog()

	result := QueryProducts(products, entity.FilterSpec{Brands: []string{"Northwind", "Velocity"}})

	assert.Equal(t, []int{1, 3, 4}, ids(result))
}

func TestQuerySizesAndColorsIntersect(t *testing.T) {
	products := testCatalog()

	result := QueryProducts(products, entity.FilterSpec{Sizes: []string{"L"}})
	assert.Equal(t, []int{1, 2}, ids(result))

	result = QueryProducts(products, entity.FilterSpec{Colors: []string{"Blue", "Black"}})
	assert.Equal(t, []int{1, 3, 4}, ids(result))
}

func TestQueryPriceRangeUsesEffectivePrice(t *testing.T) {
	products := testCatalog()

	// Product 1 lists at 100 but sells at 80, so it falls inside 0-90.
	result := QueryProducts(products, entity.FilterSpec{
		PriceRange: &entity.PriceRange{Min: 0, Max: 90},
	})
	assert.Equal(t, []int{1, 2}, ids(result))

	// Bounds are inclusive.
	result = QueryProducts(products, entity.FilterSpec{
		PriceRange: &entity.PriceRange{Min: 80, Max: 80},
	})
	assert.Equal(t, []int{1}, ids(result))
}

func TestQueryInvertedPriceRangeMatchesNothing(t *testing.T) {
	result := QueryProducts(testCatalog(), entity.FilterSpec{
		PriceRange: &entity.PriceRange{Min: 500, Max: 10},
	})

	assert.Empty(t, result)
}

func TestQuerySortNewest(t *testing.T) {
	result := QueryProducts(testCatalog(), entity.FilterSpec{SortBy: entity.SortNewest})

	assert.Equal(t, []int{4, 3, 2, 1}, ids(result))
}

func TestQuerySortByEffectivePrice(t *testing.T) {
	products := testCatalog()

	// Effective prices: 1->80, 2->50, 3->150, 4->120.
	low := QueryProducts(products, entity.FilterSpec{SortBy: entity.SortPriceLow})
	assert.Equal(t, []int{2, 1, 4, 3}, ids(low))

	high := QueryProducts(products, entity.FilterSpec{SortBy: entity.SortPriceHigh})
	assert.Equal(t, []int{3, 4, 1, 2}, ids(high))
}

func TestQuerySortRating(t *testing.T) {
	// Mirrors the two-product rating scenario from the product contract.
	products := []*entity.Product{
		{ID: 1, Price: 100, DiscountPrice: discount(80), Rating: 4.6},
		{ID: 2, Price: 50, Rating: 4.9},
	}

	result := QueryProducts(products, entity.FilterSpec{SortBy: entity.SortRating})

	assert.Equal(t, []int{2, 1}, ids(result))
}

func TestQuerySortDiscountPutsUndiscountedLast(t *testing.T) {
	// Discount percents: 1->20%, 2->0%, 3->25%, 4->0%.
	result := QueryProducts(testCatalog(), entity.FilterSpec{SortBy: entity.SortDiscount})

	assert.Equal(t, []int{3, 1, 2, 4}, ids(result))
}

func TestQuerySortIsStable(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Price: 10, Rating: 4.0},
		{ID: 2, Price: 10, Rating: 4.0},
		{ID: 3, Price: 10, Rating: 4.0},
	}

	result := QueryProducts(products, entity.FilterSpec{SortBy: entity.SortPriceLow})

	assert.Equal(t, []int{1, 2, 3}, ids(result))
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	products := testCatalog()

	assert.Empty(t, SearchProducts(products, ""))
	assert.Empty(t, SearchProducts(products, "   "))

	// Distinct from an unconstrained query, which passes everything.
	assert.Len(t, QueryProducts(products, entity.FilterSpec{}), len(products))
}

func TestSearchMatchesAnyField(t *testing.T) {
	products := testCatalog()

	byName := SearchProducts(products, "linen")
	assert.Equal(t, []int{2}, ids(byName))

	byBrand := SearchProducts(products, "velocity")
	assert.Equal(t, []int{4}, ids(byBrand))

	byDescription := SearchProducts(products, "denim")
	assert.Equal(t, []int{3}, ids(byDescription))

	// Input order is preserved, no ranking.
	byCategory := SearchProducts(products, "men")
	assert.Equal(t, []int{1, 2, 3}, ids(byCategory))
}

func TestFeaturedProductsCappedToEight(t *testing.T) {
	var products []*entity.Product
	for i := 1; i <= 12; i++ {
		products = append(products, &entity.Product{ID: i, Rating: 4.7})
	}
	products = append(products, &entity.Product{ID: 13, Rating: 4.4})

	featured := FeaturedProducts(products)

	require.Len(t, featured, 8)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(featured))
}

func TestSimilarProductsExcludesSelf(t *testing.T) {
	products := testCatalog()

	similar := SimilarProducts(products, 1, "Men")

	assert.Equal(t, []int{2}, ids(similar))
}

func TestSimilarProductsCappedToFour(t *testing.T) {
	var products []*entity.Product
	for i := 1; i <= 7; i++ {
		products = append(products, &entity.Product{ID: i, Category: "Men"})
	}

	similar := SimilarProducts(products, 1, "Men")

	assert.Equal(t, []int{2, 3, 4, 5}, ids(similar))
}

func TestAllBrandsDistinctSorted(t *testing.T) {
	brands := AllBrands(testCatalog())

	assert.Equal(t, []string{"Harbor", "Northwind", "Velocity"}, brands)
}

func TestAllCategoriesMergesSubcategories(t *testing.T) {
	categories := AllCategories(testCatalog())

	assert.Equal(t, []string{
		"Footwear", "Jackets", "Men", "Shirts", "Sneakers", "T-Shirts", "Women",
	}, categories)
}

func TestEffectivePriceResolution(t *testing.T) {
	discounted := &entity.Product{Price: 100, DiscountPrice: discount(80)}
	assert.Equal(t, 80.0, discounted.EffectivePrice())

	plain := &entity.Product{Price: 50}
	assert.Equal(t, 50.0, plain.EffectivePrice())

	// A "discount" at or above the list price does not apply.
	inverted := &entity.Product{Price: 50, DiscountPrice: discount(60)}
	assert.Equal(t, 50.0, inverted.EffectivePrice())
	assert.False(t, inverted.HasDiscount())

	// Zero is a real discount price, not an absent one.
	free := &entity.Product{Price: 50, DiscountPrice: discount(0)}
	assert.Equal(t, 0.0, free.EffectivePrice())
}

func TestDiscountPercentComputedFromPrices(t *testing.T) {
	p := &entity.Product{Price: 200, DiscountPrice: discount(150)}
	assert.InDelta(t, 25.0, p.DiscountPercent(), 0.0001)

	assert.Zero(t, (&entity.Product{Price: 100}).DiscountPercent())
}
