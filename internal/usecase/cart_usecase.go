package usecase

import (
	"context"
	"log"
	"sync"

	"stylehub/internal/domain/entity"
	"stylehub/internal/domain/repository"
	"stylehub/internal/infrastructure/localstore"
)

const cartStorageKey = "stylehub-cart"

// AddToCartInput carries the product snapshot for a new cart line.
// DiscountPrice may be nil; it then defaults to the list price.
type AddToCartInput struct {
	ProductID     int
	Name          string
	Brand         string
	Image         string
	Size          string
	Color         string
	Price         float64
	DiscountPrice *float64
}

// CartUseCase owns the cart line-item collection. Lines are kept in
// insertion order, keyed by the composite identity (product id, size,
// color). Every mutation is written through to durable local storage
// and mirrored best-effort to the backend record service when a mirror
// repository is configured.
type CartUseCase struct {
	store    *localstore.Store
	cartRepo repository.CartRepository // optional remote mirror, may be nil

	mu    sync.Mutex
	items []entity.CartItem
}

func NewCartUseCase(store *localstore.Store, cartRepo repository.CartRepository) *CartUseCase {
	uc := &CartUseCase{
		store:    store,
		cartRepo: cartRepo,
		items:    []entity.CartItem{},
	}

	if err := store.Get(cartStorageKey, &uc.items); err != nil {
		log.Printf("Error loading cart from storage: %v", err)
		uc.items = []entity.CartItem{}
	}

	return uc
}

// RestoreFromRemote seeds the cart from the backend mirror when the
// local store holds nothing, so a fresh install picks up previously
// mirrored state. Local state, once present, always wins.
func (uc *CartUseCase) RestoreFromRemote(ctx context.Context) {
	if uc.cartRepo == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.items) > 0 {
		return
	}

	items, err := uc.cartRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Error restoring cart from backend: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	uc.items = items
	uc.persist()
}

// AddToCart appends a new line with quantity 1, or increments the
// quantity of the line already holding the same composite identity.
func (uc *CartUseCase) AddToCart(ctx context.Context, input AddToCartInput) entity.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findLine(input.ProductID, input.Size, input.Color)
	if idx >= 0 {
		uc.items[idx].Quantity++
	} else {
		discountPrice := input.Price
		if input.DiscountPrice != nil {
			discountPrice = *input.DiscountPrice
		}
		uc.items = append(uc.items, entity.CartItem{
			ProductID:     input.ProductID,
			Name:          input.Name,
			Brand:         input.Brand,
			Image:         input.Image,
			Size:          input.Size,
			Color:         input.Color,
			Quantity:      1,
			Price:         input.Price,
			DiscountPrice: discountPrice,
		})
		idx = len(uc.items) - 1
	}

	item := uc.items[idx]
	uc.persist()
	uc.mirrorSave(ctx, item)
	return item
}

// RemoveFromCart deletes the line with the given composite identity.
// Removing an absent line is a no-op.
func (uc *CartUseCase) RemoveFromCart(ctx context.Context, productID int, size, color string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findLine(productID, size, color)
	if idx < 0 {
		return
	}

	uc.items = append(uc.items[:idx], uc.items[idx+1:]...)
	uc.persist()
	uc.mirrorRemove(ctx, productID, size, color)
}

// UpdateQuantity sets the quantity of an existing line, clamped to a
// minimum of 1. Driving a line to zero must go through RemoveFromCart.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, productID int, size, color string, quantity int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findLine(productID, size, color)
	if idx < 0 {
		return
	}

	if quantity < 1 {
		quantity = 1
	}
	uc.items[idx].Quantity = quantity
	uc.persist()
	uc.mirrorSave(ctx, uc.items[idx])
}

// ClearCart empties the collection.
func (uc *CartUseCase) ClearCart(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.items = []entity.CartItem{}
	uc.persist()

	if uc.cartRepo != nil {
		if err := uc.cartRepo.Clear(ctx); err != nil {
			log.Printf("Error clearing remote cart: %v", err)
		}
	}
}

// Items returns the lines in insertion order.
func (uc *CartUseCase) Items() []entity.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]entity.CartItem, len(uc.items))
	copy(items, uc.items)
	return items
}

// Total is the sum of discount price times quantity over all lines.
func (uc *CartUseCase) Total() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var total float64
	for i := range uc.items {
		total += uc.items[i].Subtotal()
	}
	return total
}

// Count is the sum of line quantities.
func (uc *CartUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var count int
	for i := range uc.items {
		count += uc.items[i].Quantity
	}
	return count
}

func (uc *CartUseCase) findLine(productID int, size, color string) int {
	for i := range uc.items {
		if uc.items[i].Matches(productID, size, color) {
			return i
		}
	}
	return -1
}

func (uc *CartUseCase) persist() {
	if err := uc.store.Set(cartStorageKey, uc.items); err != nil {
		log.Printf("Error saving cart to storage: %v", err)
	}
}

func (uc *CartUseCase) mirrorSave(ctx context.Context, item entity.CartItem) {
	if uc.cartRepo == nil {
		return
	}
	if err := uc.cartRepo.Save(ctx, item); err != nil {
		log.Printf("Error syncing cart item to backend: %v", err)
	}
}

func (uc *CartUseCase) mirrorRemove(ctx context.Context, productID int, size, color string) {
	if uc.cartRepo == nil {
		return
	}
	if err := uc.cartRepo.Remove(ctx, productID, size, color); err != nil {
		log.Printf("Error removing cart item from backend: %v", err)
	}
}
