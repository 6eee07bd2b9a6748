package router

import (
	"stylehub/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupFilterRouter(e *echo.Echo, filterHandler *handler.FilterHandler, rateLimit echo.MiddlewareFunc) {
	filters := e.Group("/v1/filters")
	filters.Use(rateLimit)

	filters.GET("", filterHandler.GetFilters)
	filters.GET("/count", filterHandler.GetActiveFilterCount)
	filters.POST("/categories/toggle", filterHandler.ToggleCategory)
	filters.POST("/brands/toggle", filterHandler.ToggleBrand)
	filters.POST("/sizes/toggle", filterHandler.ToggleSize)
	filters.POST("/colors/toggle", filterHandler.ToggleColor)
	filters.PUT("/price-range", filterHandler.SetPriceRange)
	filters.PUT("/sort", filterHandler.SetSortBy)
	filters.DELETE("", filterHandler.ClearAllFilters)
}
