package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

// Service orchestrates the catalog bounded context use cases. Stock mutation
// is deliberately absent here: only order placement touches quantities, via
// the repository's conditional decrement.
type Service struct {
	products ports.Repository
	types    ports.TypeRepository
}

// NewService wires the catalog service with its repositories.
func NewService(products ports.Repository, types ports.TypeRepository) *Service {
	return &Service{products: products, types: types}
}

// AddProduct persists a new product after checking the category reference.
func (s *Service) AddProduct(ctx context.Context, input ports.AddProductInput) (*projection.Projection[*domain.Product], error) {
	if _, err := s.types.GetByID(ctx, input.TypeID); err != nil {
		return nil, err
	}
	product, err := domain.NewProduct(uuid.NewString(), input.Name, input.Price, input.Quantity, input.TypeID)
	if err != nil {
		return nil, mapError(err)
	}
	product.ReplaceSizes(input.Sizes)
	product.SetImageURL(input.ImageURL)
	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// EditProduct applies a partial mutation to an existing product.
func (s *Service) EditProduct(ctx context.Context, input ports.EditProductInput) (*projection.Projection[*domain.Product], error) {
	current, err := s.products.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	product := current.Entity
	if input.Name != nil {
		if err := product.Rename(*input.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Price != nil {
		if err := product.SetPrice(*input.Price); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Quantity != nil {
		if err := product.SetQuantity(*input.Quantity); err != nil {
			return nil, mapError(err)
		}
	}
	if input.TypeID != nil {
		if _, err := s.types.GetByID(ctx, *input.TypeID); err != nil {
			return nil, err
		}
		if err := product.SetType(*input.TypeID); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Sizes != nil {
		product.ReplaceSizes(*input.Sizes)
	}
	if input.ImageURL != nil {
		product.SetImageURL(*input.ImageURL)
	}
	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// DeleteProduct removes a product from the catalog.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// GetProduct loads a single product.
func (s *Service) GetProduct(ctx context.Context, id string) (*projection.Projection[*domain.Product], error) {
	return s.products.GetByID(ctx, id)
}

// ListProducts returns the whole catalog.
func (s *Service) ListProducts(ctx context.Context) ([]*projection.Projection[*domain.Product], error) {
	return s.products.List(ctx)
}

// ListProductsByCategory resolves the category name case-insensitively and
// returns the products referencing it.
func (s *Service) ListProductsByCategory(ctx context.Context, category string) ([]*projection.Projection[*domain.Product], error) {
	productType, err := s.types.GetByName(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.products.ListByType(ctx, productType.ID)
}

// ListLatestProducts returns the most recently created products, newest first.
func (s *Service) ListLatestProducts(ctx context.Context, limit int) ([]*projection.Projection[*domain.Product], error) {
	if limit <= 0 {
		limit = 6
	}
	return s.products.ListLatest(ctx, limit)
}

// AddProductType creates a category, rejecting duplicate names.
func (s *Service) AddProductType(ctx context.Context, name string) (*domain.ProductType, error) {
	productType, err := domain.NewProductType(uuid.NewString(), name)
	if err != nil {
		return nil, mapError(err)
	}
	if _, err := s.types.GetByName(ctx, productType.Name); err == nil {
		return nil, ports.ErrTypeExists
	}
	return s.types.Save(ctx, productType)
}

// RenameProductType updates a category name.
func (s *Service) RenameProductType(ctx context.Context, id, newName string) (*domain.ProductType, error) {
	productType, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := productType.Rename(newName); err != nil {
		return nil, mapError(err)
	}
	return s.types.Save(ctx, productType)
}

// DeleteProductType removes a category.
func (s *Service) DeleteProductType(ctx context.Context, id string) error {
	if _, err := s.types.GetByID(ctx, id); err != nil {
		return err
	}
	return s.types.Delete(ctx, id)
}

// ListProductTypes returns all categories.
func (s *Service) ListProductTypes(ctx context.Context) ([]*domain.ProductType, error) {
	return s.types.List(ctx)
}

var _ ports.Service = (*Service)(nil)
