package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
	ordersdomain "github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

const (
	// PlaceOrderActivityName runs the full placement use case against the catalog and order store.
	PlaceOrderActivityName = "orders.activities.PlaceOrder"

	// RejectedErrorType marks cart rejections so retry policies skip them.
	RejectedErrorType = "OrderRejected"

	// ConflictErrorType marks idempotency key reuse with a different payload.
	ConflictErrorType = "IdempotencyConflict"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	placeService ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(placeService ordersports.Service) *Activities {
	return &Activities{placeService: placeService}
}

// PlaceOrder validates the cart, reserves stock, and persists the order.
// Rejections are returned as non-retryable application errors since replaying
// an invalid cart can never succeed.
func (a *Activities) PlaceOrder(ctx context.Context, input ordersports.PlaceOrderInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.placeService == nil {
		logger.Error("order placement activity not initialized")
		return nil, errors.New("order placement activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "lines", len(input.CartItems))
	order, err := a.placeService.PlaceOrder(ctx, input)
	if err != nil {
		if errors.Is(err, orderapp.ErrRejected) || errors.Is(err, orderapp.ErrInvalidInput) {
			logger.Info("PlaceOrder activity rejected", "error", err)
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), RejectedErrorType, err)
		}
		if errors.Is(err, ordersports.ErrIdempotencyConflict) {
			logger.Info("PlaceOrder activity refused reused idempotency key", "error", err)
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ConflictErrorType, err)
		}
		logger.Error("PlaceOrder activity failed", "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID)
	return order, nil
}
