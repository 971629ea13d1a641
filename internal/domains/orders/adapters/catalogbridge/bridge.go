// Package catalogbridge adapts the catalog bounded context to the narrow
// stock-keeping port order placement depends on.
package catalogbridge

import (
	"context"
	"errors"

	catalogports "github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

var _ ordersports.Catalog = (*Bridge)(nil)

// Bridge exposes catalog products and stock arithmetic to the orders context.
type Bridge struct {
	products catalogports.Repository
}

// New wires the bridge over the catalog product repository.
func New(products catalogports.Repository) *Bridge {
	return &Bridge{products: products}
}

// Lookup returns the placement-relevant view of a product.
func (b *Bridge) Lookup(ctx context.Context, productID string) (*ordersports.ProductView, error) {
	result, err := b.products.GetByID(ctx, productID)
	if err != nil {
		return nil, translate(err)
	}
	product := result.Entity
	return &ordersports.ProductView{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
		Sizes:    append([]string{}, product.Sizes...),
	}, nil
}

// DecrementStock forwards the conditional decrement.
func (b *Bridge) DecrementStock(ctx context.Context, productID string, requested int) error {
	return translate(b.products.DecrementStock(ctx, productID, requested))
}

// RestoreStock forwards the compensating increment.
func (b *Bridge) RestoreStock(ctx context.Context, productID string, quantity int) error {
	return translate(b.products.RestoreStock(ctx, productID, quantity))
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, catalogports.ErrNotFound):
		return ordersports.ErrUnknownProduct
	case errors.Is(err, catalogports.ErrInsufficientStock):
		return ordersports.ErrStockConflict
	default:
		return err
	}
}
