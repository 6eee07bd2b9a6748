package handler

import (
	"strconv"

	"stylehub/internal/usecase"
	"stylehub/pkg/errors"
	"stylehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addToWishlistRequest struct {
	ProductID     int      `json:"product_id" validate:"required,min=1"`
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand"`
	Image         string   `json:"image"`
	Price         float64  `json:"price" validate:"gte=0"`
	DiscountPrice *float64 `json:"discount_price" validate:"omitempty,gte=0"`
	InStock       bool     `json:"in_stock"`
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	return response.Success(c, h.wishlistUseCase.Items())
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	var req addToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item := h.wishlistUseCase.AddToWishlist(c.Request().Context(), usecase.AddToWishlistInput{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Brand:         req.Brand,
		Image:         req.Image,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		InStock:       req.InStock,
	})

	return response.Created(c, item)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product ID", err))
	}

	h.wishlistUseCase.RemoveFromWishlist(c.Request().Context(), productID)

	return response.Success(c, map[string]string{
		"message": "Product removed from wishlist successfully",
	})
}

func (h *WishlistHandler) ClearWishlist(c echo.Context) error {
	h.wishlistUseCase.ClearWishlist(c.Request().Context())

	return response.Success(c, map[string]string{
		"message": "Wishlist cleared successfully",
	})
}

func (h *WishlistHandler) CheckWishlistStatus(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product ID", err))
	}

	return response.Success(c, map[string]interface{}{
		"product_id":     productID,
		"is_in_wishlist": h.wishlistUseCase.IsInWishlist(productID),
	})
}

func (h *WishlistHandler) GetWishlistCount(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"count": h.wishlistUseCase.Count(),
	})
}
