package router

import (
	"stylehub/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler) {
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/featured", productHandler.GetFeaturedProducts)
	products.GET("/brands", productHandler.ListBrands)
	products.GET("/categories", productHandler.ListCategories)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/similar", productHandler.GetSimilarProducts)
}
