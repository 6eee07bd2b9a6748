package repository

import (
	"context"

	"stylehub/internal/domain/entity"
)

// CartRepository mirrors cart lines to the backend record service.
// The in-process cart store is authoritative; mirror writes are
// best-effort and keyed by the line's composite identity.
type CartRepository interface {
	GetAll(ctx context.Context) ([]entity.CartItem, error)

	// Save upserts the line stored under its composite identity.
	Save(ctx context.Context, item entity.CartItem) error

	// Remove deletes the line with the given composite identity.
	// Removing an absent line is not an error.
	Remove(ctx context.Context, productID int, size, color string) error

	Clear(ctx context.Context) error
}
