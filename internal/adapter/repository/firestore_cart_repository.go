package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"stylehub/internal/domain/entity"
	"stylehub/internal/domain/repository"
	"stylehub/pkg/errors"
	"stylehub/pkg/logger"
)

const cartItemsCollection = "cart_items_c"

// cartItemDoc is the backend record shape for a cart line.
type cartItemDoc struct {
	ProductID     int     `firestore:"product_id_c"`
	Name          string  `firestore:"name_c"`
	Brand         string  `firestore:"brand_c"`
	Image         string  `firestore:"image_c"`
	Size          string  `firestore:"size_c"`
	Color         string  `firestore:"color_c"`
	Quantity      int     `firestore:"quantity_c"`
	Price         float64 `firestore:"price_c"`
	DiscountPrice float64 `firestore:"discount_price_c"`
}

func mapCartItemFromDoc(doc cartItemDoc) entity.CartItem {
	return entity.CartItem{
		ProductID:     doc.ProductID,
		Name:          doc.Name,
		Brand:         doc.Brand,
		Image:         doc.Image,
		Size:          doc.Size,
		Color:         doc.Color,
		Quantity:      doc.Quantity,
		Price:         doc.Price,
		DiscountPrice: doc.DiscountPrice,
	}
}

func mapCartItemToDoc(item entity.CartItem) cartItemDoc {
	return cartItemDoc{
		ProductID:     item.ProductID,
		Name:          item.Name,
		Brand:         item.Brand,
		Image:         item.Image,
		Size:          item.Size,
		Color:         item.Color,
		Quantity:      item.Quantity,
		Price:         item.Price,
		DiscountPrice: item.DiscountPrice,
	}
}

// cartDocID derives the document id from the line's composite identity
// so an upsert can never duplicate a line.
func cartDocID(productID int, size, color string) string {
	return fmt.Sprintf("%d_%s_%s", productID, size, color)
}

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{client: client}
}

func (r *firestoreCartRepository) GetAll(ctx context.Context) ([]entity.CartItem, error) {
	iter := r.client.Collection(cartItemsCollection).Documents(ctx)

	var items []entity.CartItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate cart items", err)
		}
		var record cartItemDoc
		if err := doc.DataTo(&record); err != nil {
			logger.Error("Failed to parse cart item document %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, mapCartItemFromDoc(record))
	}

	return items, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, item entity.CartItem) error {
	docID := cartDocID(item.ProductID, item.Size, item.Color)
	_, err := r.client.Collection(cartItemsCollection).Doc(docID).Set(ctx, mapCartItemToDoc(item))
	if err != nil {
		return errors.Internal("Failed to save cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) Remove(ctx context.Context, productID int, size, color string) error {
	docID := cartDocID(productID, size, color)
	_, err := r.client.Collection(cartItemsCollection).Doc(docID).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Internal("Failed to remove cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) Clear(ctx context.Context) error {
	iter := r.client.Collection(cartItemsCollection).Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate cart items", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to clear cart items", err)
		}
	}

	return nil
}
