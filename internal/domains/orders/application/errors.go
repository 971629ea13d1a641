package application

import (
	"errors"
	"fmt"

	"github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated an order invariant before
	// any catalog lookup happened.
	ErrInvalidInput = errors.New("invalid order input")

	// ErrRejected is the common ancestor of all cart validation rejections.
	// Transports match it to answer 400 without caring which check failed.
	ErrRejected = errors.New("order rejected")
)

// ProductNotFoundError rejects a cart line referencing a missing product.
type ProductNotFoundError struct {
	ProductID string
	Name      string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Name)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrRejected }

// SizeUnavailableError rejects a size the product does not offer.
type SizeUnavailableError struct {
	ProductID string
	Name      string
	Size      string
}

func (e *SizeUnavailableError) Error() string {
	return fmt.Sprintf("selected size %q is not available for product: %s", e.Size, e.Name)
}

func (e *SizeUnavailableError) Unwrap() error { return ErrRejected }

// InsufficientStockError rejects a quantity exceeding the available stock,
// whether discovered during validation or at commit time by the conditional
// decrement.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product: %s (requested %d, available %d)", e.Name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrRejected }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyFullName) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrEmptyPhone) ||
		errors.Is(err, domain.ErrEmptyAddress) ||
		errors.Is(err, domain.ErrEmptyCart) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidPayment) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
