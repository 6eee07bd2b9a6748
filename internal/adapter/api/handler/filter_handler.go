package handler

import (
	"stylehub/internal/domain/entity"
	"stylehub/internal/usecase"
	"stylehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type FilterHandler struct {
	filterUseCase *usecase.FilterUseCase
}

func NewFilterHandler(filterUseCase *usecase.FilterUseCase) *FilterHandler {
	return &FilterHandler{
		filterUseCase: filterUseCase,
	}
}

type toggleFilterRequest struct {
	Value string `json:"value" validate:"required"`
}

type priceRangeRequest struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

type sortByRequest struct {
	SortBy string `json:"sort_by" validate:"required,oneof=newest price-low price-high rating discount"`
}

func (h *FilterHandler) GetFilters(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"filters":      h.filterUseCase.Spec(),
		"active_count": h.filterUseCase.ActiveFilterCount(),
	})
}

func (h *FilterHandler) GetActiveFilterCount(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"count": h.filterUseCase.ActiveFilterCount(),
	})
}

func (h *FilterHandler) ToggleCategory(c echo.Context) error {
	return h.toggle(c, h.filterUseCase.ToggleCategory)
}

func (h *FilterHandler) ToggleBrand(c echo.Context) error {
	return h.toggle(c, h.filterUseCase.ToggleBrand)
}

func (h *FilterHandler) ToggleSize(c echo.Context) error {
	return h.toggle(c, h.filterUseCase.ToggleSize)
}

func (h *FilterHandler) ToggleColor(c echo.Context) error {
	return h.toggle(c, h.filterUseCase.ToggleColor)
}

func (h *FilterHandler) toggle(c echo.Context, apply func(string) entity.FilterSpec) error {
	var req toggleFilterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, apply(req.Value))
}

func (h *FilterHandler) SetPriceRange(c echo.Context) error {
	var req priceRangeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.filterUseCase.SetPriceRange(req.Min, req.Max))
}

func (h *FilterHandler) SetSortBy(c echo.Context) error {
	var req sortByRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.filterUseCase.SetSortBy(entity.SortKey(req.SortBy)))
}

func (h *FilterHandler) ClearAllFilters(c echo.Context) error {
	return response.Success(c, h.filterUseCase.ClearAllFilters())
}
