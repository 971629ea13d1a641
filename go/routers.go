package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
	Admin       bool
}

// Routes is the list of the generated routes.
type Routes []Route

// ApiHandleFunctions groups the bounded context APIs served by the router.
type ApiHandleFunctions struct {
	OrdersAPI  OrdersAPI
	CatalogAPI CatalogAPI
	ContactAPI ContactAPI
	AdminAPI   AdminAPI
}

// NewRouter returns a new router with a default gin engine.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds all routes to the provided engine. Routes marked
// Admin pass through the session-checking middleware first.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	requireSession := handleFunctions.AdminAPI.RequireSession()
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if route.Admin {
			handlers = []gin.HandlerFunc{requireSession, route.HandlerFunc}
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, handlers...)
		case http.MethodPost:
			router.POST(route.Pattern, handlers...)
		case http.MethodPut:
			router.PUT(route.Pattern, handlers...)
		case http.MethodDelete:
			router.DELETE(route.Pattern, handlers...)
		}
	}
	return router
}

// DefaultHandleFunc answers 501 for routes without a wired handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"PlaceOrder", http.MethodPost, "/api/order", handleFunctions.OrdersAPI.PlaceOrder, false},
		{"ListOrders", http.MethodGet, "/api/order", handleFunctions.OrdersAPI.ListOrders, false},
		{"UpdateOrderStatus", http.MethodPut, "/api/order", handleFunctions.OrdersAPI.UpdateOrderStatus, false},

		{"GetProducts", http.MethodGet, "/api/products", handleFunctions.CatalogAPI.GetProducts, false},
		{"GetLastProducts", http.MethodGet, "/api/last-products", handleFunctions.CatalogAPI.GetLastProducts, false},

		{"AddProduct", http.MethodPost, "/api/product-management", handleFunctions.CatalogAPI.AddProduct, true},
		{"EditProduct", http.MethodPut, "/api/product-management", handleFunctions.CatalogAPI.EditProduct, true},
		{"DeleteProduct", http.MethodDelete, "/api/product-management", handleFunctions.CatalogAPI.DeleteProduct, true},
		{"GetManagedProducts", http.MethodGet, "/api/product-management", handleFunctions.CatalogAPI.GetManagedProducts, true},

		{"AddProductType", http.MethodPost, "/api/product-type", handleFunctions.CatalogAPI.AddProductType, true},
		{"GetProductTypes", http.MethodGet, "/api/product-type", handleFunctions.CatalogAPI.GetProductTypes, true},
		{"RenameProductType", http.MethodPut, "/api/product-type", handleFunctions.CatalogAPI.RenameProductType, true},
		{"DeleteProductType", http.MethodDelete, "/api/product-type", handleFunctions.CatalogAPI.DeleteProductType, true},

		{"SubmitContact", http.MethodPost, "/api/contact-us", handleFunctions.ContactAPI.SubmitContact, false},
		{"GetContactDetails", http.MethodGet, "/api/contact-details", handleFunctions.ContactAPI.GetContactDetails, true},

		{"AdminLogin", http.MethodPost, "/api/admin-login", handleFunctions.AdminAPI.Login, false},
		{"AdminLogout", http.MethodPost, "/api/admin-logout", handleFunctions.AdminAPI.Logout, false},
	}
}
