package ports

import (
	"context"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	AddProduct(ctx context.Context, input AddProductInput) (*projection.Projection[*domain.Product], error)
	EditProduct(ctx context.Context, input EditProductInput) (*projection.Projection[*domain.Product], error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*projection.Projection[*domain.Product], error)
	ListProducts(ctx context.Context) ([]*projection.Projection[*domain.Product], error)
	ListProductsByCategory(ctx context.Context, category string) ([]*projection.Projection[*domain.Product], error)
	ListLatestProducts(ctx context.Context, limit int) ([]*projection.Projection[*domain.Product], error)

	AddProductType(ctx context.Context, name string) (*domain.ProductType, error)
	RenameProductType(ctx context.Context, id, newName string) (*domain.ProductType, error)
	DeleteProductType(ctx context.Context, id string) error
	ListProductTypes(ctx context.Context) ([]*domain.ProductType, error)
}

// AddProductInput carries the admin payload for a new product.
type AddProductInput struct {
	Name     string
	Price    float64
	Quantity int
	TypeID   string
	Sizes    []string
	ImageURL string
}

// EditProductInput carries a partial update: nil fields keep the stored value.
type EditProductInput struct {
	ID       string
	Name     *string
	Price    *float64
	Quantity *int
	TypeID   *string
	Sizes    *[]string
	ImageURL *string
}
