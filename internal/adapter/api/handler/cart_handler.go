package handler

import (
	"stylehub/internal/usecase"
	"stylehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addToCartRequest struct {
	ProductID     int      `json:"product_id" validate:"required,min=1"`
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand"`
	Image         string   `json:"image"`
	Size          string   `json:"size" validate:"required"`
	Color         string   `json:"color" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	DiscountPrice *float64 `json:"discount_price" validate:"omitempty,gte=0"`
}

type cartLineRequest struct {
	ProductID int    `json:"product_id" validate:"required,min=1"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

type updateQuantityRequest struct {
	ProductID int    `json:"product_id" validate:"required,min=1"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, h.cartUseCase.Items())
}

func (h *CartHandler) GetCartSummary(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"total": h.cartUseCase.Total(),
		"count": h.cartUseCase.Count(),
	})
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item := h.cartUseCase.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Brand:         req.Brand,
		Image:         req.Image,
		Size:          req.Size,
		Color:         req.Color,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
	})

	return response.Created(c, item)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.cartUseCase.UpdateQuantity(c.Request().Context(), req.ProductID, req.Size, req.Color, req.Quantity)

	return response.Success(c, h.cartUseCase.Items())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	var req cartLineRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.cartUseCase.RemoveFromCart(c.Request().Context(), req.ProductID, req.Size, req.Color)

	return response.Success(c, map[string]string{
		"message": "Item removed from cart successfully",
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cartUseCase.ClearCart(c.Request().Context())

	return response.Success(c, map[string]string{
		"message": "Cart cleared successfully",
	})
}
