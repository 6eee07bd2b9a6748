package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"stylehub/internal/domain/entity"
	"stylehub/internal/domain/repository"
	"stylehub/internal/domain/service"
)

// CatalogUseCase fetches the product collection from the backend record
// service and runs the client-side query engine over it. List, search
// and accessor operations degrade to empty results when the backend
// fails; single-product lookups propagate the failure so the caller can
// offer a retry.
type CatalogUseCase struct {
	productRepo repository.ProductRepository

	mu     sync.Mutex
	gen    uint64
	cached []*entity.Product
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
	}
}

// fetchCatalog loads the full product collection. Each call takes a
// fresh generation number; a response only replaces the cached catalog
// when no newer fetch was issued meanwhile, and every caller is served
// the newest installed catalog, so a slow stale response can neither
// overwrite nor shadow a newer one.
func (uc *CatalogUseCase) fetchCatalog(ctx context.Context) ([]*entity.Product, error) {
	uc.mu.Lock()
	uc.gen++
	gen := uc.gen
	uc.mu.Unlock()

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen == uc.gen {
		uc.cached = products
	}
	return uc.cached, nil
}

// ListProducts returns the catalog subset matching spec, ordered by its
// sort key. Backend failure degrades to an empty result.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, spec entity.FilterSpec) []*entity.Product {
	products, err := uc.fetchCatalog(ctx)
	if err != nil {
		log.Printf("Failed to fetch products: %v", err)
		return []*entity.Product{}
	}

	return service.QueryProducts(products, spec)
}

// SearchProducts runs the catalog search. An empty query returns an
// empty list without touching the backend.
func (uc *CatalogUseCase) SearchProducts(ctx context.Context, query string) []*entity.Product {
	if strings.TrimSpace(query) == "" {
		return []*entity.Product{}
	}

	products, err := uc.fetchCatalog(ctx)
	if err != nil {
		log.Printf("Failed to fetch products for search: %v", err)
		return []*entity.Product{}
	}

	return service.SearchProducts(products, query)
}

// GetProductByID rethrows backend failures, unlike the list operations.
func (uc *CatalogUseCase) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// GetFeaturedProducts returns the featured subset of the catalog.
func (uc *CatalogUseCase) GetFeaturedProducts(ctx context.Context) []*entity.Product {
	products, err := uc.fetchCatalog(ctx)
	if err != nil {
		log.Printf("Failed to fetch featured products: %v", err)
		return []*entity.Product{}
	}

	return service.FeaturedProducts(products)
}

// GetSimilarProducts returns products sharing the given product's
// category. The product lookup propagates NotFound to the caller.
func (uc *CatalogUseCase) GetSimilarProducts(ctx context.Context, productID int) ([]*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	products, err := uc.fetchCatalog(ctx)
	if err != nil {
		log.Printf("Failed to fetch similar products: %v", err)
		return []*entity.Product{}, nil
	}

	return service.SimilarProducts(products, product.ID, product.Category), nil
}

// GetAllBrands returns the distinct sorted brand list.
func (uc *CatalogUseCase) GetAllBrands(ctx context.Context) []string {
	products, err := uc.fetchCatalog(ctx)
	if err != nil {
		log.Printf("Failed to fetch brands: %v", err)
		return []string{}
	}

	return service.AllBrands(products)
}

// GetAllCategories returns the distinct sorted category and subcategory
// list.
func (uc *CatalogUseCase) GetAllCategories(ctx context.Context) []string {
	products, err := uc.fetchCatalog(ctx)
	if err != nil {
		log.Printf("Failed to fetch categories: %v", err)
		return []string{}
	}

	return service.AllCategories(products)
}
