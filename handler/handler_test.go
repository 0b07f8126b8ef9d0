package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	models "phone-store/model"
	"phone-store/service"
	"phone-store/store"
)

func newTestRouter() *mux.Router {
	catalog := store.NewCatalog()
	catalog.Add(models.Phone{ID: 1, Name: "iPhone 14", Brand: "Apple", Price: 1200, Stock: 10})
	catalog.Add(models.Phone{ID: 2, Name: "Galaxy S23", Brand: "Samsung", Price: 900, Stock: 5})
	catalog.Add(models.Phone{ID: 3, Name: "Pixel 7", Brand: "Google", Price: 800, Stock: 8})

	logger := zap.NewNop()
	svc := service.NewService(catalog, store.NewCart(), logger)
	h := NewHandler(svc)

	r := mux.NewRouter()
	r.Use(Recovery(logger), Logging(logger))
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestListPhones(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, "GET", "/phones", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var phones []models.Phone
	decode(t, rec, &phones)
	require.Len(t, phones, 3)
	assert.Equal(t, "iPhone 14", phones[0].Name)

	// seeded catalog has no Apple phone at or under 1000
	rec = doJSON(t, r, "GET", "/phones?brand=Apple&maxPrice=1000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &phones)
	assert.Empty(t, phones)

	rec = doJSON(t, r, "GET", "/phones?maxPrice=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPhone(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, "GET", "/phones/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Phone
	decode(t, rec, &p)
	assert.Equal(t, "Galaxy S23", p.Name)

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, "GET", "/phones/99", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, "GET", "/phones/abc", nil).Code)
}

func TestCreatePhone(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, "POST", "/phones", map[string]interface{}{
		"name": "X", "brand": "Y", "price": 100, "stock": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var p models.Phone
	decode(t, rec, &p)
	assert.Equal(t, int64(4), p.ID)

	// missing field
	rec = doJSON(t, r, "POST", "/phones", map[string]interface{}{
		"name": "X", "brand": "Y", "price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// negative price
	rec = doJSON(t, r, "POST", "/phones", map[string]interface{}{
		"name": "X", "brand": "Y", "price": -1, "stock": 5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unparsable body
	req := httptest.NewRequest("POST", "/phones", bytes.NewBufferString("{not json"))
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestUpdatePhone(t *testing.T) {
	r := newTestRouter()

	// zero price must count as supplied
	rec := doJSON(t, r, "PUT", "/phones/1", map[string]interface{}{"price": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Phone
	decode(t, rec, &p)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, "iPhone 14", p.Name)

	// no fields at all
	rec = doJSON(t, r, "PUT", "/phones/1", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, "PUT", "/phones/99",
		map[string]interface{}{"price": 1}).Code)
}

func TestDeletePhone(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, "DELETE", "/phones/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Phone
	decode(t, rec, &p)
	assert.Equal(t, "Pixel 7", p.Name)

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, "DELETE", "/phones/3", nil).Code)
}

func TestCartEndpoints(t *testing.T) {
	r := newTestRouter()

	// reserve 3 of phone 1
	rec := doJSON(t, r, "POST", "/cart", map[string]interface{}{"phoneId": 1, "quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	var cart []models.CartItem
	decode(t, rec, &cart)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)

	// view with totals
	rec = doJSON(t, r, "GET", "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var details []models.CartItemDetail
	decode(t, rec, &details)
	require.Len(t, details, 1)
	assert.Equal(t, 3600.0, details[0].TotalPrice)

	// failure mappings
	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, r, "POST", "/cart", map[string]interface{}{"phoneId": 1}).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, "POST", "/cart", map[string]interface{}{"phoneId": 99, "quantity": 1}).Code)
	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, r, "POST", "/cart", map[string]interface{}{"phoneId": 2, "quantity": 6}).Code)

	// release
	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, "DELETE", "/cart", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, "DELETE", "/cart?phoneId=2", nil).Code)

	rec = doJSON(t, r, "DELETE", "/cart?phoneId=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &cart)
	assert.Empty(t, cart)

	// released stock is available again
	rec = doJSON(t, r, "GET", "/phones/1", nil)
	var p models.Phone
	decode(t, rec, &p)
	assert.Equal(t, 10, p.Stock)
}

func TestCheckoutFlow(t *testing.T) {
	r := newTestRouter()

	// empty cart
	assert.Equal(t, http.StatusBadRequest, doJSON(t, r, "POST", "/checkout", nil).Code)

	// reserve the full stock of phone 2, then check out
	rec := doJSON(t, r, "POST", "/cart", map[string]interface{}{"phoneId": 2, "quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "POST", "/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msg map[string]string
	decode(t, rec, &msg)
	assert.Equal(t, "Order placed successfully", msg["message"])

	// cart is empty, stock stays at zero
	rec = doJSON(t, r, "GET", "/cart", nil)
	var details []models.CartItemDetail
	decode(t, rec, &details)
	assert.Empty(t, details)

	rec = doJSON(t, r, "GET", "/phones/2", nil)
	var p models.Phone
	decode(t, rec, &p)
	assert.Equal(t, 0, p.Stock)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, "GET", "/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Not Found", body["error"])

	// wrong method on a known path is a generic 404 as well
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, "PATCH", "/phones", nil).Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, "GET", "/phones", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
