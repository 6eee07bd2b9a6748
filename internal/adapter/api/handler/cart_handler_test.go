package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylehub/internal/adapter/api"
	"stylehub/internal/domain/entity"
	"stylehub/internal/infrastructure/localstore"
	"stylehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newCartHandler(t *testing.T) *CartHandler {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewCartHandler(usecase.NewCartUseCase(store, nil))
}

func TestAddToCart(t *testing.T) {
	e := newTestEcho()
	h := newCartHandler(t)

	body := `{"product_id": 1, "name": "Classic Tee", "size": "M", "color": "Black", "price": 100}`
	c, rec := newJSONContext(e, http.MethodPost, "/v1/cart", body)

	require.NoError(t, h.AddToCart(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    entity.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.Quantity)
	assert.Equal(t, 100.0, resp.Data.DiscountPrice)
}

func TestAddToCartMergesSameSelection(t *testing.T) {
	e := newTestEcho()
	h := newCartHandler(t)

	body := `{"product_id": 1, "name": "Classic Tee", "size": "M", "color": "Black", "price": 100}`
	c, _ := newJSONContext(e, http.MethodPost, "/v1/cart", body)
	require.NoError(t, h.AddToCart(c))

	c, rec := newJSONContext(e, http.MethodPost, "/v1/cart", body)
	require.NoError(t, h.AddToCart(c))

	var resp struct {
		Data entity.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Quantity)

	c, rec = newJSONContext(e, http.MethodGet, "/v1/cart", "")
	require.NoError(t, h.GetCart(c))

	var list struct {
		Data []entity.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)
}

func TestAddToCartValidation(t *testing.T) {
	e := newTestEcho()
	h := newCartHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/v1/cart", `{"product_id": 1, "name": "Classic Tee"}`)

	require.NoError(t, h.AddToCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	e := newTestEcho()
	h := newCartHandler(t)

	body := `{"product_id": 1, "name": "Classic Tee", "size": "M", "color": "Black", "price": 100}`
	c, _ := newJSONContext(e, http.MethodPost, "/v1/cart", body)
	require.NoError(t, h.AddToCart(c))

	update := `{"product_id": 1, "size": "M", "color": "Black", "quantity": 0}`
	c, rec := newJSONContext(e, http.MethodPut, "/v1/cart/quantity", update)
	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []entity.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Data[0].Quantity)
}

func TestCartSummary(t *testing.T) {
	e := newTestEcho()
	h := newCartHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/v1/cart", `{"product_id": 1, "name": "Classic Tee", "size": "M", "color": "Black", "price": 100, "discount_price": 80}`)
	require.NoError(t, h.AddToCart(c))
	c, _ = newJSONContext(e, http.MethodPost, "/v1/cart", `{"product_id": 2, "name": "Linen Shirt", "size": "L", "color": "White", "price": 50}`)
	require.NoError(t, h.AddToCart(c))

	c, rec := newJSONContext(e, http.MethodGet, "/v1/cart/summary", "")
	require.NoError(t, h.GetCartSummary(c))

	var resp struct {
		Data struct {
			Total float64 `json:"total"`
			Count int     `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 130.0, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Count)
}

func TestRemoveFromCart(t *testing.T) {
	e := newTestEcho()
	h := newCartHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/v1/cart", `{"product_id": 1, "name": "Classic Tee", "size": "M", "color": "Black", "price": 100}`)
	require.NoError(t, h.AddToCart(c))

	c, rec := newJSONContext(e, http.MethodDelete, "/v1/cart", `{"product_id": 1, "size": "M", "color": "Black"}`)
	require.NoError(t, h.RemoveFromCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(e, http.MethodGet, "/v1/cart", "")
	require.NoError(t, h.GetCart(c))

	var resp struct {
		Data []entity.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
