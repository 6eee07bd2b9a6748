package usecase

import (
	"context"
	"log"
	"sync"

	"stylehub/internal/domain/entity"
	"stylehub/internal/domain/repository"
	"stylehub/internal/infrastructure/localstore"
)

const wishlistStorageKey = "stylehub-wishlist"

// AddToWishlistInput carries the product snapshot for a wishlist entry.
// DiscountPrice may be nil; it then defaults to the list price.
type AddToWishlistInput struct {
	ProductID     int
	Name          string
	Brand         string
	Image         string
	Price         float64
	DiscountPrice *float64
	InStock       bool
}

// WishlistUseCase owns the wishlist collection: insertion-ordered
// entries keyed by product id, with the same write-through persistence
// and optional backend mirror as the cart.
type WishlistUseCase struct {
	store        *localstore.Store
	wishlistRepo repository.WishlistRepository // optional remote mirror, may be nil

	mu    sync.Mutex
	items []entity.WishlistItem
}

func NewWishlistUseCase(store *localstore.Store, wishlistRepo repository.WishlistRepository) *WishlistUseCase {
	uc := &WishlistUseCase{
		store:        store,
		wishlistRepo: wishlistRepo,
		items:        []entity.WishlistItem{},
	}

	if err := store.Get(wishlistStorageKey, &uc.items); err != nil {
		log.Printf("Error loading wishlist from storage: %v", err)
		uc.items = []entity.WishlistItem{}
	}

	return uc
}

// RestoreFromRemote seeds the wishlist from the backend mirror when
// the local store holds nothing. Local state, once present, always
// wins.
func (uc *WishlistUseCase) RestoreFromRemote(ctx context.Context) {
	if uc.wishlistRepo == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.items) > 0 {
		return
	}

	items, err := uc.wishlistRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Error restoring wishlist from backend: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	uc.items = items
	uc.persist()
}

// AddToWishlist appends a new entry. Adding a product that is already
// present is a no-op.
func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, input AddToWishlistInput) entity.WishlistItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if idx := uc.findEntry(input.ProductID); idx >= 0 {
		return uc.items[idx]
	}

	discountPrice := input.Price
	if input.DiscountPrice != nil {
		discountPrice = *input.DiscountPrice
	}

	item := entity.WishlistItem{
		ProductID:     input.ProductID,
		Name:          input.Name,
		Brand:         input.Brand,
		Image:         input.Image,
		Price:         input.Price,
		DiscountPrice: discountPrice,
		InStock:       input.InStock,
	}
	uc.items = append(uc.items, item)
	uc.persist()

	if uc.wishlistRepo != nil {
		if err := uc.wishlistRepo.Save(ctx, item); err != nil {
			log.Printf("Error syncing wishlist item to backend: %v", err)
		}
	}

	return item
}

// RemoveFromWishlist deletes the entry for the given product. Removing
// an absent entry is a no-op.
func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, productID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findEntry(productID)
	if idx < 0 {
		return
	}

	uc.items = append(uc.items[:idx], uc.items[idx+1:]...)
	uc.persist()

	if uc.wishlistRepo != nil {
		if err := uc.wishlistRepo.Remove(ctx, productID); err != nil {
			log.Printf("Error removing wishlist item from backend: %v", err)
		}
	}
}

// ClearWishlist empties the collection.
func (uc *WishlistUseCase) ClearWishlist(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.items = []entity.WishlistItem{}
	uc.persist()

	if uc.wishlistRepo != nil {
		if err := uc.wishlistRepo.Clear(ctx); err != nil {
			log.Printf("Error clearing remote wishlist: %v", err)
		}
	}
}

// IsInWishlist is the membership test by product id.
func (uc *WishlistUseCase) IsInWishlist(productID int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.findEntry(productID) >= 0
}

// Items returns the entries in insertion order.
func (uc *WishlistUseCase) Items() []entity.WishlistItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]entity.WishlistItem, len(uc.items))
	copy(items, uc.items)
	return items
}

// Count returns the number of entries.
func (uc *WishlistUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return len(uc.items)
}

func (uc *WishlistUseCase) findEntry(productID int) int {
	for i := range uc.items {
		if uc.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (uc *WishlistUseCase) persist() {
	if err := uc.store.Set(wishlistStorageKey, uc.items); err != nil {
		log.Printf("Error saving wishlist to storage: %v", err)
	}
}
