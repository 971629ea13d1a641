package storefrontserver

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	productmapper "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/aeshsummer/storefront-api/internal/domains/catalog/application"
	catalogdomain "github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	catalogports "github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
	"github.com/aeshsummer/storefront-api/internal/shared/respond"
)

var imageURLPattern = regexp.MustCompile(`^https?://[^\s$.?#][^\s]*$`)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service   catalogports.Service
	responder *respond.Responder
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service, responder: newCatalogResponder()}
}

func newCatalogResponder() *respond.Responder {
	return respond.NewResponder(
		func(err error) (int, string, bool) {
			if errors.Is(err, catalogapp.ErrInvalidInput) {
				return http.StatusBadRequest, err.Error(), true
			}
			return 0, "", false
		},
		func(err error) (int, string, bool) {
			if errors.Is(err, catalogports.ErrTypeExists) {
				return http.StatusBadRequest, "Product type already exists", true
			}
			return 0, "", false
		},
		func(err error) (int, string, bool) {
			if errors.Is(err, catalogports.ErrTypeNotFound) {
				return http.StatusNotFound, "Product type not found", true
			}
			return 0, "", false
		},
		func(err error) (int, string, bool) {
			if errors.Is(err, catalogports.ErrNotFound) {
				return http.StatusNotFound, "Product not found", true
			}
			return 0, "", false
		},
	)
}

// Get /api/products
// Storefront listing, optionally filtered by category name
func (api *CatalogAPI) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	category := strings.TrimSpace(c.Query("category"))

	var (
		list []*projection.Projection[*catalogdomain.Product]
		err  error
	)
	if category != "" {
		list, err = api.service.ListProductsByCategory(ctx, category)
		if errors.Is(err, catalogports.ErrTypeNotFound) {
			respond.Fail(c, http.StatusNotFound, "Category not found")
			return
		}
	} else {
		list, err = api.service.ListProducts(ctx)
	}
	if err != nil {
		api.responder.Error(c, err, "Error fetching products")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{
		"products": productmapper.FromProjectionList(list, api.typeNameIndex(ctx)),
	})
}

// Get /api/last-products
// The six most recently added products for the landing page
func (api *CatalogAPI) GetLastProducts(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := api.service.ListLatestProducts(ctx, 6)
	if err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{
		"products": productmapper.FromProjectionList(list, api.typeNameIndex(ctx)),
	})
}

// Post /api/product-management
// Add a new product
func (api *CatalogAPI) AddProduct(c *gin.Context) {
	var payload productmapper.AddProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" || payload.Price == 0 || payload.Quantity == 0 ||
		payload.TypeID == "" || payload.ImageURL == "" || len(payload.Sizes) == 0 {
		respond.Fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if !imageURLPattern.MatchString(payload.ImageURL) {
		respond.Fail(c, http.StatusBadRequest, "Invalid image URL")
		return
	}
	saved, err := api.service.AddProduct(c.Request.Context(), catalogports.AddProductInput{
		Name:     payload.Name,
		Price:    payload.Price,
		Quantity: payload.Quantity,
		TypeID:   payload.TypeID,
		Sizes:    payload.Sizes,
		ImageURL: payload.ImageURL,
	})
	if err != nil {
		api.responder.Error(c, err, "Failed to create product")
		return
	}
	respond.OK(c, http.StatusCreated, "", respond.Envelope{
		"product": productmapper.FromProjection(saved, api.typeName(c.Request.Context(), saved.Entity.TypeID)),
	})
}

// Put /api/product-management
// Edit an existing product; absent fields keep their stored values
func (api *CatalogAPI) EditProduct(c *gin.Context) {
	var payload productmapper.EditProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		respond.Fail(c, http.StatusBadRequest, "Product ID is required")
		return
	}
	updated, err := api.service.EditProduct(c.Request.Context(), catalogports.EditProductInput{
		ID:       payload.ID,
		Name:     payload.Name,
		Price:    payload.Price,
		Quantity: payload.Quantity,
		TypeID:   payload.TypeID,
		Sizes:    payload.Sizes,
		ImageURL: payload.ImageURL,
	})
	if err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{
		"product": productmapper.FromProjection(updated, api.typeName(c.Request.Context(), updated.Entity.TypeID)),
	})
}

// Delete /api/product-management
// Delete a product by id
func (api *CatalogAPI) DeleteProduct(c *gin.Context) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.ID) == "" {
		respond.Fail(c, http.StatusBadRequest, "Product ID is required")
		return
	}
	if err := api.service.DeleteProduct(c.Request.Context(), payload.ID); err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusOK, "Product deleted", nil)
}

// Get /api/product-management
// All products for the admin dashboard
func (api *CatalogAPI) GetManagedProducts(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := api.service.ListProducts(ctx)
	if err != nil {
		api.responder.Error(c, err, "Error fetching products")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{
		"products": productmapper.FromProjectionList(list, api.typeNameIndex(ctx)),
	})
}

// Post /api/product-type
// Create a new category
func (api *CatalogAPI) AddProductType(c *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		respond.Fail(c, http.StatusBadRequest, "Name is required")
		return
	}
	created, err := api.service.AddProductType(c.Request.Context(), payload.Name)
	if err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusCreated, "", respond.Envelope{"data": productmapper.FromDomainType(created)})
}

// Get /api/product-type
// All categories
func (api *CatalogAPI) GetProductTypes(c *gin.Context) {
	types, err := api.service.ListProductTypes(c.Request.Context())
	if err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{"data": productmapper.FromDomainTypes(types)})
}

// Put /api/product-type
// Rename a category
func (api *CatalogAPI) RenameProductType(c *gin.Context) {
	var payload struct {
		ID      string `json:"id"`
		NewName string `json:"newName"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil ||
		strings.TrimSpace(payload.ID) == "" || strings.TrimSpace(payload.NewName) == "" {
		respond.Fail(c, http.StatusBadRequest, "ID and new name are required")
		return
	}
	renamed, err := api.service.RenameProductType(c.Request.Context(), payload.ID, payload.NewName)
	if err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{"data": productmapper.FromDomainType(renamed)})
}

// Delete /api/product-type
// Delete a category
func (api *CatalogAPI) DeleteProductType(c *gin.Context) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.ID) == "" {
		respond.Fail(c, http.StatusBadRequest, "ID is required")
		return
	}
	if err := api.service.DeleteProductType(c.Request.Context(), payload.ID); err != nil {
		api.responder.Error(c, err, "Server error")
		return
	}
	respond.OK(c, http.StatusOK, "Product type deleted", nil)
}

// typeNameIndex builds an id-to-name lookup; a lookup failure degrades to
// unresolved names rather than failing the listing.
func (api *CatalogAPI) typeNameIndex(ctx context.Context) map[string]string {
	types, err := api.service.ListProductTypes(ctx)
	if err != nil {
		return map[string]string{}
	}
	index := make(map[string]string, len(types))
	for _, t := range types {
		index[t.ID] = t.Name
	}
	return index
}

func (api *CatalogAPI) typeName(ctx context.Context, typeID string) string {
	return api.typeNameIndex(ctx)[typeID]
}
