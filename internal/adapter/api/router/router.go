package router

import (
	"stylehub/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the route handlers wired at application start. The
// state-holding usecases behind them are constructed once by the
// application root and injected here.
type Handlers struct {
	Health   *handler.HealthHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Filter   *handler.FilterHandler
}

func Setup(e *echo.Echo, h Handlers, rateLimit echo.MiddlewareFunc) {
	SetupHealthRouter(e, h.Health)
	SetupProductRouter(e, h.Product)
	SetupCartRouter(e, h.Cart, rateLimit)
	SetupWishlistRouter(e, h.Wishlist, rateLimit)
	SetupFilterRouter(e, h.Filter, rateLimit)
}
