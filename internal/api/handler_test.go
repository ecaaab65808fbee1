package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastfood-order-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(service.NewOrderService())
	handler.SetupRoutes(router)
	return router
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter()

	w := getPath(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "FastFood Order Management", body["service"])
}

func TestReadyEndpoint(t *testing.T) {
	router := setupRouter()

	w := getPath(t, router, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "ready", body["status"])
}

func TestIndexEndpoint(t *testing.T) {
	router := setupRouter()

	w := getPath(t, router, "/")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "FastFood Order Management", body["service"])
	assert.NotEmpty(t, body["endpoints"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter()

	w := getPath(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRequestIDHeader(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = getPath(t, router, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCalculateEndpoint(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [
			{"product_name": "Burger", "quantity": 2, "unit_price": 9.99},
			{"product_name": "Fries", "quantity": 1, "unit_price": 3.50}
		],
		"tax_rate": 0.20
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.InDelta(t, 28.18, body["total"], 1e-9)
	assert.InDelta(t, 23.48, body["subtotal"], 1e-9)
	assert.InDelta(t, 4.70, body["tax"], 1e-9)
}

func TestCalculateEndpointDefaultTaxRate(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [{"product_name": "Burger", "quantity": 1, "unit_price": 10.00}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.InDelta(t, 10.00, body["total"], 1e-9)
	assert.InDelta(t, 10.00, body["subtotal"], 1e-9)
	assert.InDelta(t, 0.00, body["tax"], 1e-9)
}

func TestCalculateEndpointZeroQuantity(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [{"product_name": "Napkins", "quantity": 0, "unit_price": 1.50}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.InDelta(t, 0.00, body["total"], 1e-9)
}

func TestCalculateEndpointEmptyItems(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{"items": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "order must contain at least one item", body["error"])
}

func TestCalculateEndpointNegativeQuantity(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [{"product_name": "Burger", "quantity": -1, "unit_price": 10.00}]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "quantity cannot be negative", body["error"])
}

func TestCalculateEndpointNegativeUnitPrice(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [{"product_name": "Burger", "quantity": 1, "unit_price": -2.00}]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "unit price cannot be negative", body["error"])
}

func TestCalculateEndpointNegativeTaxRate(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [{"product_name": "Burger", "quantity": 1, "unit_price": 10.00}],
		"tax_rate": -0.10
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "tax rate cannot be negative", body["error"])
}

func TestCalculateEndpointMissingItems(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{"tax_rate": 0.10}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestCalculateEndpointMissingItemField(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{
		"items": [{"product_name": "Burger", "quantity": 1}]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestCalculateEndpointItemsNotAList(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `{"items": "burger"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateEndpointMalformedJSON(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/calculate", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateTransitionEndpoint(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/validate-transition", `{
		"current_status": "pending",
		"new_status": "confirmed"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "pending", body["current_status"])
	assert.Equal(t, "confirmed", body["new_status"])
}

func TestValidateTransitionEndpointRejected(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/validate-transition", `{
		"current_status": "delivered",
		"new_status": "pending"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["valid"])
}

func TestValidateTransitionEndpointCaseInsensitive(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/validate-transition", `{
		"current_status": "PENDING",
		"new_status": "Confirmed"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "PENDING", body["current_status"])
	assert.Equal(t, "Confirmed", body["new_status"])
}

func TestValidateTransitionEndpointUnknownStatus(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/validate-transition", `{
		"current_status": "foo",
		"new_status": "confirmed"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "invalid current_status: foo", body["error"])
}

func TestValidateTransitionEndpointMissingField(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/validate-transition", `{"current_status": "pending"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestValidateTransitionEndpointNonStringStatus(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/orders/validate-transition", `{
		"current_status": 123,
		"new_status": "confirmed"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
