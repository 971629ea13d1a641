package storefrontserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminmemory "github.com/aeshsummer/storefront-api/internal/domains/admins/adapters/memory"
	adminapp "github.com/aeshsummer/storefront-api/internal/domains/admins/application"
	catalogmemory "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/aeshsummer/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	contactsmemory "github.com/aeshsummer/storefront-api/internal/domains/contacts/adapters/memory"
	contactsapp "github.com/aeshsummer/storefront-api/internal/domains/contacts/application"
	"github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordersmemory "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
)

type testApp struct {
	router   *gin.Engine
	products *catalogmemory.Repository
	catalog  *catalogapp.Service
	admins   *adminapp.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := catalogmemory.NewRepository()
	types := catalogmemory.NewTypeRepository()
	catalogService := catalogapp.NewService(products, types)

	orderService := ordersapp.NewService(
		catalogbridge.New(products),
		ordersmemory.NewRepository(),
		ordersapp.WithIdempotencyStore(ordersmemory.NewIdempotencyStore()),
	)
	contactService := contactsapp.NewService(contactsmemory.NewRepository())
	adminService := adminapp.NewService(adminmemory.NewRepository(), adminmemory.NewSessionStore(0))

	handlers := ApiHandleFunctions{
		OrdersAPI:  NewOrdersAPI(orderService, nil),
		CatalogAPI: NewCatalogAPI(catalogService),
		ContactAPI: NewContactAPI(contactService),
		AdminAPI:   NewAdminAPI(adminService),
	}

	router := gin.New()
	router = NewRouterWithGinEngine(router, handlers)

	return &testApp{
		router:   router,
		products: products,
		catalog:  catalogService,
		admins:   adminService,
	}
}

// seedProduct creates a category and a sized product, returning the product ID.
func (a *testApp) seedProduct(t *testing.T, quantity int) string {
	t.Helper()
	shirts, err := a.catalog.AddProductType(context.Background(), "Shirts")
	require.NoError(t, err)
	saved, err := a.catalog.AddProduct(context.Background(), catalogports.AddProductInput{
		Name:     "Linen Shirt",
		Price:    49.90,
		Quantity: quantity,
		TypeID:   shirts.ID,
		Sizes:    []string{"S", "M", "L"},
		ImageURL: "https://cdn.example.com/linen.jpg",
	})
	require.NoError(t, err)
	return saved.Entity.ID
}

// loginAsAdmin registers an account, logs in through the endpoint, and
// returns the session cookie.
func (a *testApp) loginAsAdmin(t *testing.T) *http.Cookie {
	t.Helper()
	_, err := a.admins.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)

	res := a.do(t, http.MethodPost, "/api/admin-login", map[string]any{
		"username": "june",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, res.Code)
	for _, cookie := range res.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set on login")
	return nil
}

func (a *testApp) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	a.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}

func orderPayload(productID string) map[string]any {
	return map[string]any{
		"fullName":        "June Carter",
		"email":           "june@example.com",
		"phoneNumber":     "555-0101",
		"shippingAddress": "12 Shore Road",
		"cartItems": []map[string]any{
			{"productId": productID, "name": "Linen Shirt", "quantity": 2, "price": 49.90, "size": "M"},
		},
		"totalAmount":   99.80,
		"paymentMethod": "cash",
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedProduct(t, 5)

	res := app.do(t, http.MethodPost, "/api/order", orderPayload(productID))
	require.Equal(t, http.StatusCreated, res.Code)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order placed successfully!", body["message"])

	order := body["order"].(map[string]any)
	assert.NotEmpty(t, order["id"])
	assert.Equal(t, "Processing", order["status"])
	assert.Equal(t, 99.80, order["totalAmount"])

	// Placement decremented live stock.
	stored, err := app.products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Entity.Quantity)
}

func TestPlaceOrderEndpoint_UnknownProduct(t *testing.T) {
	app := newTestApp(t)
	app.seedProduct(t, 5)

	res := app.do(t, http.MethodPost, "/api/order", orderPayload("ghost"))
	require.Equal(t, http.StatusBadRequest, res.Code)

	body := decodeBody(t, res)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "product not found: Linen Shirt", body["message"])
}

func TestPlaceOrderEndpoint_InsufficientStock(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedProduct(t, 1)

	res := app.do(t, http.MethodPost, "/api/order", orderPayload(productID))
	require.Equal(t, http.StatusBadRequest, res.Code)

	body := decodeBody(t, res)
	assert.Equal(t, "not enough stock for product: Linen Shirt (requested 2, available 1)", body["message"])

	// Stock untouched by the rejected placement.
	stored, err := app.products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Entity.Quantity)
}

func TestPlaceOrderEndpoint_IdempotentRetry(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedProduct(t, 5)
	payload := orderPayload(productID)

	first := app.do(t, http.MethodPost, "/api/order", payload)
	require.Equal(t, http.StatusCreated, first.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(mustJSON(t, payload)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "checkout-retry-1")
	recorder := httptest.NewRecorder()
	app.router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)
	firstKeyedID := decodeBody(t, recorder)["order"].(map[string]any)["id"]

	retry := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(mustJSON(t, payload)))
	retry.Header.Set("Content-Type", "application/json")
	retry.Header.Set("Idempotency-Key", "checkout-retry-1")
	recorder = httptest.NewRecorder()
	app.router.ServeHTTP(recorder, retry)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, firstKeyedID, decodeBody(t, recorder)["order"].(map[string]any)["id"])

	// One keyed placement plus the unkeyed one: 4 units total, not 6.
	stored, err := app.products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Entity.Quantity)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedProduct(t, 5)

	placed := app.do(t, http.MethodPost, "/api/order", orderPayload(productID))
	require.Equal(t, http.StatusCreated, placed.Code)
	orderID := decodeBody(t, placed)["order"].(map[string]any)["id"].(string)

	res := app.do(t, http.MethodPut, "/api/order", map[string]any{
		"id":        orderID,
		"newStatus": "Shipped",
	})
	require.Equal(t, http.StatusOK, res.Code)

	body := decodeBody(t, res)
	assert.Equal(t, "Order status updated successfully!", body["message"])
	assert.Equal(t, "Shipped", body["order"].(map[string]any)["status"])
}

func TestUpdateOrderStatusEndpoint_NotFound(t *testing.T) {
	app := newTestApp(t)

	res := app.do(t, http.MethodPut, "/api/order", map[string]any{
		"id":        "missing",
		"newStatus": "Shipped",
	})
	require.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Order not found", decodeBody(t, res)["message"])
}

func TestListOrdersEndpoint(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedProduct(t, 5)

	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/order", orderPayload(productID)).Code)

	res := app.do(t, http.MethodGet, "/api/order", nil)
	require.Equal(t, http.StatusOK, res.Code)
	orders := decodeBody(t, res)["orders"].([]any)
	assert.Len(t, orders, 1)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/product-management"},
		{http.MethodPost, "/api/product-management"},
		{http.MethodGet, "/api/product-type"},
		{http.MethodGet, "/api/contact-details"},
	} {
		res := app.do(t, route.method, route.path, map[string]any{})
		require.Equal(t, http.StatusUnauthorized, res.Code, "%s %s", route.method, route.path)
		assert.Equal(t, "Unauthorized", decodeBody(t, res)["message"])
	}
}

func TestAdminLoginFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAsAdmin(t)

	res := app.do(t, http.MethodGet, "/api/product-management", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)

	// Logout invalidates the session behind the cookie.
	logout := app.do(t, http.MethodPost, "/api/admin-logout", nil, cookie)
	require.Equal(t, http.StatusOK, logout.Code)

	res = app.do(t, http.MethodGet, "/api/product-management", nil, cookie)
	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	app := newTestApp(t)
	_, err := app.admins.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)

	res := app.do(t, http.MethodPost, "/api/admin-login", map[string]any{
		"username": "june",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, res)["message"])
}

func TestAddProductEndpoint_Validation(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAsAdmin(t)

	res := app.do(t, http.MethodPost, "/api/product-management", map[string]any{
		"name": "Linen Shirt",
	}, cookie)
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, res)["message"])

	res = app.do(t, http.MethodPost, "/api/product-management", map[string]any{
		"name":     "Linen Shirt",
		"price":    49.90,
		"quantity": 5,
		"type":     "shirts",
		"sizes":    []string{"M"},
		"image":    "not-a-url",
	}, cookie)
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Invalid image URL", decodeBody(t, res)["message"])
}

func TestGetProductsEndpoint_UnknownCategory(t *testing.T) {
	app := newTestApp(t)
	app.seedProduct(t, 5)

	res := app.do(t, http.MethodGet, "/api/products?category=Boots", nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Category not found", decodeBody(t, res)["message"])

	res = app.do(t, http.MethodGet, "/api/products?category=shirts", nil)
	require.Equal(t, http.StatusOK, res.Code)
	products := decodeBody(t, res)["products"].([]any)
	require.Len(t, products, 1)

	// The listing resolves the category id back to its display name.
	product := products[0].(map[string]any)
	assert.Equal(t, "Shirts", product["typeName"])
}

func TestProductTypeEndpoints(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAsAdmin(t)

	created := app.do(t, http.MethodPost, "/api/product-type", map[string]any{"name": "Hats"}, cookie)
	require.Equal(t, http.StatusCreated, created.Code)
	typeID := decodeBody(t, created)["data"].(map[string]any)["id"].(string)

	dup := app.do(t, http.MethodPost, "/api/product-type", map[string]any{"name": "hats"}, cookie)
	require.Equal(t, http.StatusBadRequest, dup.Code)
	assert.Equal(t, "Product type already exists", decodeBody(t, dup)["message"])

	renamed := app.do(t, http.MethodPut, "/api/product-type", map[string]any{
		"id":      typeID,
		"newName": "Summer Hats",
	}, cookie)
	require.Equal(t, http.StatusOK, renamed.Code)

	deleted := app.do(t, http.MethodDelete, "/api/product-type", map[string]any{"id": typeID}, cookie)
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.Equal(t, "Product type deleted", decodeBody(t, deleted)["message"])
}

func TestContactEndpoints(t *testing.T) {
	app := newTestApp(t)

	res := app.do(t, http.MethodPost, "/api/contact-us", map[string]any{
		"name":    "June Carter",
		"email":   "june@example.com",
		"message": "Do you restock the linen shirts?",
	})
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "Message received successfully!", decodeBody(t, res)["message"])

	res = app.do(t, http.MethodPost, "/api/contact-us", map[string]any{
		"name": "June Carter",
	})
	require.Equal(t, http.StatusBadRequest, res.Code)

	cookie := app.loginAsAdmin(t)
	res = app.do(t, http.MethodGet, "/api/contact-details", nil, cookie)
	require.Equal(t, http.StatusOK, res.Code)
	details := decodeBody(t, res)["data"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "June Carter", details[0].(map[string]any)["name"])
}
