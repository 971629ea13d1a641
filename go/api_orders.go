package storefrontserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/http/mapper"
	orderapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
	ordersdomain "github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/respond"
)

// OrdersAPI wires HTTP transport with the orders bounded context service and workflows.
type OrdersAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
	responder *respond.Responder
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrdersAPI {
	return OrdersAPI{
		service:   service,
		workflows: workflows,
		responder: newOrdersResponder(),
	}
}

func newOrdersResponder() *respond.Responder {
	return respond.NewResponder(
		func(err error) (int, string, bool) {
			if errors.Is(err, orderapp.ErrRejected) || errors.Is(err, orderapp.ErrInvalidInput) {
				return http.StatusBadRequest, err.Error(), true
			}
			return 0, "", false
		},
		func(err error) (int, string, bool) {
			if errors.Is(err, ordersports.ErrNotFound) {
				return http.StatusNotFound, "Order not found", true
			}
			return 0, "", false
		},
		func(err error) (int, string, bool) {
			if errors.Is(err, ordersports.ErrIdempotencyConflict) {
				return http.StatusConflict, "Idempotency key already used with a different payload", true
			}
			return 0, "", false
		},
	)
}

// Post /api/order
// Place a new order after validating the cart against live stock
func (api *OrdersAPI) PlaceOrder(c *gin.Context) {
	var payload ordermapper.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input := ordermapper.ToPlaceOrderInput(payload, c.GetHeader("Idempotency-Key"))
	order, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		api.responder.Error(c, err, "Error placing order")
		return
	}
	respond.OK(c, http.StatusCreated, "Order placed successfully!", respond.Envelope{
		"order": ordermapper.FromDomainOrder(order),
	})
}

func (api *OrdersAPI) placeOrder(ctx context.Context, input ordersports.PlaceOrderInput) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.PlaceOrder(ctx, input)
}

// Get /api/order
// List all orders for the dashboard
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		api.responder.Error(c, err, "Error fetching orders")
		return
	}
	respond.OK(c, http.StatusOK, "", respond.Envelope{
		"orders": ordermapper.FromDomainOrders(orders),
	})
}

// Put /api/order
// Update the status of an existing order
func (api *OrdersAPI) UpdateOrderStatus(c *gin.Context) {
	var payload ordermapper.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := api.service.SetStatus(c.Request.Context(), payload.ID, ordersdomain.Status(payload.NewStatus))
	if err != nil {
		api.responder.Error(c, err, "Error updating order status")
		return
	}
	respond.OK(c, http.StatusOK, "Order status updated successfully!", respond.Envelope{
		"order": ordermapper.FromDomainOrder(order),
	})
}
