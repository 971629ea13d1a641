package ports

import (
	"context"

	"github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
)

// Service exposes the order use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID string, newStatus domain.Status) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

// CartLineInput is one client-submitted cart entry: a product reference plus
// the display snapshot taken at add-to-cart time.
type CartLineInput struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
	Size      string
}

// PlaceOrderInput carries the proposed order. TotalAmount is recorded as
// submitted; it is not cross-checked against the line sum.
type PlaceOrderInput struct {
	FullName        string
	Email           string
	PhoneNumber     string
	ShippingAddress string
	CartItems       []CartLineInput
	TotalAmount     float64
	PaymentMethod   string

	// IdempotencyKey optionally dedupes retried submissions when placement
	// runs through the durable workflow path.
	IdempotencyKey string
}
