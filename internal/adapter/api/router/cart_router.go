package router

import (
	"stylehub/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, cartHandler *handler.CartHandler, rateLimit echo.MiddlewareFunc) {
	cart := e.Group("/v1/cart")
	cart.Use(rateLimit)

	cart.GET("", cartHandler.GetCart)
	cart.GET("/summary", cartHandler.GetCartSummary)
	cart.POST("/items", cartHandler.AddToCart)
	cart.PUT("/items", cartHandler.UpdateQuantity)
	cart.DELETE("/items", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)
}
