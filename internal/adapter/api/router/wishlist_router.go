package router

import (
	"stylehub/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo, wishlistHandler *handler.WishlistHandler, rateLimit echo.MiddlewareFunc) {
	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(rateLimit)

	wishlist.GET("", wishlistHandler.GetWishlist)
	wishlist.GET("/count", wishlistHandler.GetWishlistCount)
	wishlist.POST("", wishlistHandler.AddToWishlist)
	wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
	wishlist.DELETE("", wishlistHandler.ClearWishlist)
	wishlist.GET("/:productId/status", wishlistHandler.CheckWishlistStatus)
}
