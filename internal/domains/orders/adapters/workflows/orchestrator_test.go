package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	orderapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
	ordersdomain "github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
	orderactivities "github.com/aeshsummer/storefront-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/aeshsummer/storefront-api/internal/platform/temporal/workflows/orders"
)

type stubOrderService struct {
	order    *ordersdomain.Order
	placeErr error
}

func (s *stubOrderService) PlaceOrder(context.Context, ports.PlaceOrderInput) (*ordersdomain.Order, error) {
	if s.placeErr != nil {
		return nil, s.placeErr
	}
	return s.order, nil
}

func (s *stubOrderService) SetStatus(context.Context, string, ordersdomain.Status) (*ordersdomain.Order, error) {
	return nil, errors.New("not supported")
}

func (s *stubOrderService) GetOrderByID(context.Context, string) (*ordersdomain.Order, error) {
	return nil, errors.New("not supported")
}

func (s *stubOrderService) ListOrders(context.Context) ([]*ordersdomain.Order, error) {
	return nil, errors.New("not supported")
}

// runPlacementWorkflow executes the real workflow and activity in the Temporal
// test environment and returns the error exactly as a client would see it.
func runPlacementWorkflow(t *testing.T, svc ports.Service) error {
	t.Helper()
	suite := testsuite.WorkflowTestSuite{}
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(orderworkflows.OrderPlacementWorkflow)
	env.RegisterActivityWithOptions(
		orderactivities.NewActivities(svc).PlaceOrder,
		activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName},
	)
	env.ExecuteWorkflow(orderworkflows.OrderPlacementWorkflow, orderworkflows.OrderPlacementWorkflowInput{
		Command: ports.PlaceOrderInput{
			FullName:        "June Carter",
			Email:           "june@example.com",
			PhoneNumber:     "555-0101",
			ShippingAddress: "12 Shore Road",
			CartItems:       []ports.CartLineInput{{ProductID: "ghost", Name: "Ghost Hat", Quantity: 1, Price: 10}},
			TotalAmount:     10,
			PaymentMethod:   "cash",
		},
	})
	require.True(t, env.IsWorkflowCompleted())
	return env.GetWorkflowError()
}

func TestRestoreWorkflowError_Rejection(t *testing.T) {
	svc := &stubOrderService{placeErr: &orderapp.ProductNotFoundError{ProductID: "ghost", Name: "Ghost Hat"}}
	wfErr := runPlacementWorkflow(t, svc)
	require.Error(t, wfErr)

	// The failure converter rebuilds the activity error client-side, dropping
	// the wrapped sentinel.
	require.NotErrorIs(t, wfErr, orderapp.ErrRejected)

	restored := restoreWorkflowError(wfErr)
	require.ErrorIs(t, restored, orderapp.ErrRejected)
	assert.Equal(t, "product not found: Ghost Hat", restored.Error())
}

func TestRestoreWorkflowError_IdempotencyConflict(t *testing.T) {
	svc := &stubOrderService{placeErr: ports.ErrIdempotencyConflict}
	wfErr := runPlacementWorkflow(t, svc)
	require.Error(t, wfErr)

	restored := restoreWorkflowError(wfErr)
	require.ErrorIs(t, restored, ports.ErrIdempotencyConflict)
}

func TestRestoreWorkflowError_PassThrough(t *testing.T) {
	assert.NoError(t, restoreWorkflowError(nil))

	opaque := errors.New("dial tcp: connection refused")
	assert.Same(t, opaque, restoreWorkflowError(opaque))
}

func TestPlacementWorkflow_Success(t *testing.T) {
	svc := &stubOrderService{order: &ordersdomain.Order{ID: "order-1", Status: ordersdomain.StatusProcessing}}
	suite := testsuite.WorkflowTestSuite{}
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(orderworkflows.OrderPlacementWorkflow)
	env.RegisterActivityWithOptions(
		orderactivities.NewActivities(svc).PlaceOrder,
		activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName},
	)
	env.ExecuteWorkflow(orderworkflows.OrderPlacementWorkflow, orderworkflows.OrderPlacementWorkflowInput{
		Command: ports.PlaceOrderInput{
			FullName:        "June Carter",
			Email:           "june@example.com",
			PhoneNumber:     "555-0101",
			ShippingAddress: "12 Shore Road",
			CartItems:       []ports.CartLineInput{{ProductID: "p1", Name: "Tote", Quantity: 1, Price: 20}},
			TotalAmount:     20,
			PaymentMethod:   "cash",
		},
	})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var order ordersdomain.Order
	require.NoError(t, env.GetWorkflowResult(&order))
	assert.Equal(t, "order-1", order.ID)
}
