package repository

import (
	"context"

	"stylehub/internal/domain/entity"
)

// WishlistRepository mirrors wishlist entries to the backend record
// service, keyed by product id. Like the cart mirror, writes are
// best-effort.
type WishlistRepository interface {
	GetAll(ctx context.Context) ([]entity.WishlistItem, error)
	Save(ctx context.Context, item entity.WishlistItem) error
	Remove(ctx context.Context, productID int) error
	Clear(ctx context.Context) error
}
