package repository

import (
	"context"

	"stylehub/internal/domain/entity"
)

// ProductRepository is the read-only boundary to the backend record
// service's product collection. The catalog is authored backend-side;
// filtering, sorting and search run client-side in the catalog engine,
// so List returns the full collection.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int) (*entity.Product, error)
}
