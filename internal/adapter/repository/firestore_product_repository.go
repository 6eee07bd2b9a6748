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

const productsCollection = "products_c"

// productDoc is the backend record shape for a product. The hosted
// schema suffixes custom fields with _c; this adapter is the only
// place aware of those names. The backend also stores a
// discount_percent_c field; the display model recomputes the percent
// from the prices, so it is not mapped.
type productDoc struct {
	ID            int      `firestore:"id_c"`
	Name          string   `firestore:"name_c"`
	Brand         string   `firestore:"brand_c"`
	Category      string   `firestore:"category_c"`
	Subcategory   string   `firestore:"subcategory_c"`
	Description   string   `firestore:"description_c"`
	Price         float64  `firestore:"price_c"`
	DiscountPrice *float64 `firestore:"discount_price_c"`
	Rating        float64  `firestore:"rating_c"`
	ReviewCount   int      `firestore:"review_count_c"`
	InStock       bool     `firestore:"in_stock_c"`
	Sizes         []string `firestore:"sizes_c"`
	Colors        []string `firestore:"colors_c"`
	Images        []string `firestore:"images_c"`
}

func mapProductFromDoc(doc productDoc) *entity.Product {
	return &entity.Product{
		ID:            doc.ID,
		Name:          doc.Name,
		Brand:         doc.Brand,
		Category:      doc.Category,
		Subcategory:   doc.Subcategory,
		Description:   doc.Description,
		Price:         doc.Price,
		DiscountPrice: doc.DiscountPrice,
		Rating:        doc.Rating,
		ReviewCount:   doc.ReviewCount,
		InStock:       doc.InStock,
		Sizes:         doc.Sizes,
		Colors:        doc.Colors,
		Images:        doc.Images,
	}
}

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

// List returns the full product collection in document order. The
// catalog engine filters and sorts client-side, so no query constraints
// are pushed down.
func (r *firestoreProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).OrderBy("id_c", firestore.Asc).Documents(ctx)

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}
		var record productDoc
		if err := doc.DataTo(&record); err != nil {
			logger.Error("Failed to parse product document %s: %v", doc.Ref.ID, err)
			continue
		}
		products = append(products, mapProductFromDoc(record))
	}

	return products, nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(strconv.Itoa(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var record productDoc
	if err := doc.DataTo(&record); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return mapProductFromDoc(record), nil
}
