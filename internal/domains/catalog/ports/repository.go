package ports

import (
	"context"
	"errors"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrTypeNotFound = errors.New("product type not found")
	ErrTypeExists   = errors.New("product type already exists")

	// ErrInsufficientStock is returned by DecrementStock when the conditional
	// update guard fails: the product exists but holds fewer units than
	// requested at the moment of the write.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repository persists products and owns the stock arithmetic.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error)
	GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Product], error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*projection.Projection[*domain.Product], error)
	ListByType(ctx context.Context, typeID string) ([]*projection.Projection[*domain.Product], error)
	ListLatest(ctx context.Context, limit int) ([]*projection.Projection[*domain.Product], error)

	// DecrementStock atomically applies quantity -= requested, but only when
	// quantity >= requested still holds at write time. Implementations must
	// make the check and the write a single step so that two concurrent
	// placements cannot both take the last units.
	DecrementStock(ctx context.Context, id string, requested int) error

	// RestoreStock adds units back after a failed placement commit.
	RestoreStock(ctx context.Context, id string, quantity int) error
}

// TypeRepository persists product categories.
type TypeRepository interface {
	Save(ctx context.Context, productType *domain.ProductType) (*domain.ProductType, error)
	GetByID(ctx context.Context, id string) (*domain.ProductType, error)
	// GetByName matches the category name case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.ProductType, error)
	List(ctx context.Context) ([]*domain.ProductType, error)
	Delete(ctx context.Context, id string) error
}
