package handler

import (
	"strconv"
	"strings"

	"stylehub/internal/domain/entity"
	"stylehub/internal/usecase"
	"stylehub/pkg/errors"
	"stylehub/pkg/response"
	"stylehub/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

// filterSpecFromQuery builds a FilterSpec from request query params.
// Absent params impose no constraint; an unknown sort key means no
// sorting, matching the engine's contract.
func filterSpecFromQuery(c echo.Context) entity.FilterSpec {
	spec := entity.FilterSpec{
		Categories: splitParam(c.QueryParam("categories")),
		Brands:     splitParam(c.QueryParam("brands")),
		Sizes:      splitParam(c.QueryParam("sizes")),
		Colors:     splitParam(c.QueryParam("colors")),
		SortBy:     entity.SortKey(c.QueryParam("sort")),
	}

	minParam := c.QueryParam("min_price")
	maxParam := c.QueryParam("max_price")
	if minParam != "" || maxParam != "" {
		priceRange := entity.PriceRange{Min: 0, Max: 10000}
		if v, err := strconv.ParseFloat(minParam, 64); err == nil {
			priceRange.Min = v
		}
		if v, err := strconv.ParseFloat(maxParam, 64); err == nil {
			priceRange.Max = v
		}
		spec.PriceRange = &priceRange
	}

	return spec
}

func splitParam(param string) []string {
	if param == "" {
		return nil
	}
	parts := strings.Split(param, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	spec := filterSpecFromQuery(c)
	products := h.catalogUseCase.ListProducts(c.Request().Context(), spec)

	pagination := utils.GetPaginationParams(c)
	start, end := utils.PageBounds(len(products), pagination.Offset, pagination.PageSize)

	return response.Paginated(c, products[start:end], int64(len(products)), pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	results := h.catalogUseCase.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	return response.Success(c, results)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product ID", err))
	}

	product, err := h.catalogUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetFeaturedProducts(c echo.Context) error {
	featured := h.catalogUseCase.GetFeaturedProducts(c.Request().Context())
	return response.Success(c, featured)
}

func (h *ProductHandler) GetSimilarProducts(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product ID", err))
	}

	similar, err := h.catalogUseCase.GetSimilarProducts(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, similar)
}

func (h *ProductHandler) ListBrands(c echo.Context) error {
	brands := h.catalogUseCase.GetAllBrands(c.Request().Context())
	return response.Success(c, brands)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories := h.catalogUseCase.GetAllCategories(c.Request().Context())
	return response.Success(c, categories)
}
