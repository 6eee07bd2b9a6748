package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"stylehub/internal/domain/entity"
	"stylehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleCategoryRoundTrip(t *testing.T) {
	e := newTestEcho()
	h := NewFilterHandler(usecase.NewFilterUseCase())

	c, rec := newJSONContext(e, http.MethodPost, "/v1/filters/categories/toggle", `{"value": "Men"}`)
	require.NoError(t, h.ToggleCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entity.FilterSpec `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Men"}, resp.Data.Categories)

	c, rec = newJSONContext(e, http.MethodPost, "/v1/filters/categories/toggle", `{"value": "Men"}`)
	require.NoError(t, h.ToggleCategory(c))

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Categories)
}

func TestToggleValidation(t *testing.T) {
	e := newTestEcho()
	h := NewFilterHandler(usecase.NewFilterUseCase())

	c, rec := newJSONContext(e, http.MethodPost, "/v1/filters/brands/toggle", `{}`)
	require.NoError(t, h.ToggleBrand(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSetSortByRejectsUnknownKey(t *testing.T) {
	e := newTestEcho()
	h := NewFilterHandler(usecase.NewFilterUseCase())

	c, rec := newJSONContext(e, http.MethodPut, "/v1/filters/sort", `{"sort_by": "cheapest"}`)
	require.NoError(t, h.SetSortBy(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSetSortBy(t *testing.T) {
	e := newTestEcho()
	h := NewFilterHandler(usecase.NewFilterUseCase())

	c, rec := newJSONContext(e, http.MethodPut, "/v1/filters/sort", `{"sort_by": "price-high"}`)
	require.NoError(t, h.SetSortBy(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entity.FilterSpec `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entity.SortPriceHigh, resp.Data.SortBy)
}

func TestSetPriceRange(t *testing.T) {
	e := newTestEcho()
	h := NewFilterHandler(usecase.NewFilterUseCase())

	c, rec := newJSONContext(e, http.MethodPut, "/v1/filters/price-range", `{"min": 50, "max": 250}`)
	require.NoError(t, h.SetPriceRange(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data entity.FilterSpec `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.PriceRange)
	assert.Equal(t, 50.0, resp.Data.PriceRange.Min)
	assert.Equal(t, 250.0, resp.Data.PriceRange.Max)
}

func TestClearAllFilters(t *testing.T) {
	e := newTestEcho()
	uc := usecase.NewFilterUseCase()
	h := NewFilterHandler(uc)

	uc.ToggleCategory("Men")
	uc.ToggleBrand("Northwind")
	uc.SetSortBy(entity.SortRating)

	c, rec := newJSONContext(e, http.MethodDelete, "/v1/filters", "")
	require.NoError(t, h.ClearAllFilters(c))

	var resp struct {
		Data entity.FilterSpec `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Categories)
	assert.Empty(t, resp.Data.Brands)
	assert.Equal(t, entity.SortNewest, resp.Data.SortBy)
}

func TestGetActiveFilterCount(t *testing.T) {
	e := newTestEcho()
	uc := usecase.NewFilterUseCase()
	h := NewFilterHandler(uc)

	uc.ToggleCategory("Men")
	uc.ToggleSize("M")
	uc.ToggleColor("Black")

	c, rec := newJSONContext(e, http.MethodGet, "/v1/filters/count", "")
	require.NoError(t, h.GetActiveFilterCount(c))
	assert.Contains(t, rec.Body.String(), `"count":3`)
}
