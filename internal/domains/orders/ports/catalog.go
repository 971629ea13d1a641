package ports

import (
	"context"
	"errors"
)

var (
	// ErrUnknownProduct is returned by the catalog collaborator when a cart
	// line references a product that does not exist.
	ErrUnknownProduct = errors.New("product not found")

	// ErrStockConflict is returned by DecrementStock when the conditional
	// guard fails at write time: another placement took the units between
	// validation and commit.
	ErrStockConflict = errors.New("insufficient stock")
)

// ProductView is the slice of catalog state order placement needs.
type ProductView struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Sizes    []string
}

// HasSize reports whether the exact (case-sensitive) size variant is offered.
func (v *ProductView) HasSize(size string) bool {
	for _, s := range v.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Catalog is the stock-keeping collaborator for order placement. DecrementStock
// must be a single atomic check-and-write so concurrent placements cannot both
// take the last units.
type Catalog interface {
	Lookup(ctx context.Context, productID string) (*ProductView, error)
	DecrementStock(ctx context.Context, productID string, requested int) error
	RestoreStock(ctx context.Context, productID string, quantity int) error
}
