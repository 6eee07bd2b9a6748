package repository

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"stylehub/internal/domain/entity"
	"stylehub/internal/domain/repository"
	"stylehub/pkg/errors"
	"stylehub/pkg/logger"
)

const wishlistItemsCollection = "wishlist_items_c"

// wishlistItemDoc is the backend record shape for a wishlist entry.
type wishlistItemDoc struct {
	ProductID     int     `firestore:"product_id_c"`
	Name          string  `firestore:"name_c"`
	Brand         string  `firestore:"brand_c"`
	Image         string  `firestore:"image_c"`
	Price         float64 `firestore:"price_c"`
	DiscountPrice float64 `firestore:"discount_price_c"`
	InStock       bool    `firestore:"in_stock_c"`
}

func mapWishlistItemFromDoc(doc wishlistItemDoc) entity.WishlistItem {
	return entity.WishlistItem{
		ProductID:     doc.ProductID,
		Name:          doc.Name,
		Brand:         doc.Brand,
		Image:         doc.Image,
		Price:         doc.Price,
		DiscountPrice: doc.DiscountPrice,
		InStock:       doc.InStock,
	}
}

func mapWishlistItemToDoc(item entity.WishlistItem) wishlistItemDoc {
	return wishlistItemDoc{
		ProductID:     item.ProductID,
		Name:          item.Name,
		Brand:         item.Brand,
		Image:         item.Image,
		Price:         item.Price,
		DiscountPrice: item.DiscountPrice,
		InStock:       item.InStock,
	}
}

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func (r *firestoreWishlistRepository) GetAll(ctx context.Context) ([]entity.WishlistItem, error) {
	iter := r.client.Collection(wishlistItemsCollection).Documents(ctx)

	var items []entity.WishlistItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate wishlist items", err)
		}
		var record wishlistItemDoc
		if err := doc.DataTo(&record); err != nil {
			logger.Error("Failed to parse wishlist item document %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, mapWishlistItemFromDoc(record))
	}

	return items, nil
}

func (r *firestoreWishlistRepository) Save(ctx context.Context, item entity.WishlistItem) error {
	docID := strconv.Itoa(item.ProductID)
	_, err := r.client.Collection(wishlistItemsCollection).Doc(docID).Set(ctx, mapWishlistItemToDoc(item))
	if err != nil {
		return errors.Internal("Failed to save wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, productID int) error {
	_, err := r.client.Collection(wishlistItemsCollection).Doc(strconv.Itoa(productID)).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Internal("Failed to remove wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Clear(ctx context.Context) error {
	iter := r.client.Collection(wishlistItemsCollection).Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate wishlist items", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to clear wishlist items", err)
		}
	}

	return nil
}
