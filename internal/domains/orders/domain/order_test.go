package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []Line {
	return []Line{{ProductID: "p1", Name: "Tote", Quantity: 1, Price: 20}}
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder("o1", "June Carter", "june@example.com", "555-0101", "12 Shore Road", validLines(), 20, PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, order.Status)
	assert.Equal(t, validLines(), order.Lines)
}

func TestNewOrder_Invariants(t *testing.T) {
	cases := []struct {
		name string
		run  func() (*Order, error)
		want error
	}{
		{"empty name", func() (*Order, error) {
			return NewOrder("o1", "  ", "e@x.c", "555", "addr", validLines(), 20, PaymentCash)
		}, ErrEmptyFullName},
		{"empty cart", func() (*Order, error) {
			return NewOrder("o1", "June", "e@x.c", "555", "addr", nil, 20, PaymentCash)
		}, ErrEmptyCart},
		{"zero quantity line", func() (*Order, error) {
			return NewOrder("o1", "June", "e@x.c", "555", "addr", []Line{{ProductID: "p1", Quantity: 0}}, 20, PaymentCash)
		}, ErrInvalidQuantity},
		{"unknown payment", func() (*Order, error) {
			return NewOrder("o1", "June", "e@x.c", "555", "addr", validLines(), 20, "cheque")
		}, ErrInvalidPayment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.run()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	order, err := NewOrder("o1", "June", "e@x.c", "555", "addr", validLines(), 20, PaymentOnline)
	require.NoError(t, err)

	// No transition graph: any known status can follow any other.
	require.NoError(t, order.UpdateStatus(StatusDelivered))
	require.NoError(t, order.UpdateStatus(StatusProcessing))
	require.NoError(t, order.UpdateStatus(StatusCancel))

	// Empty defaults back to Processing.
	require.NoError(t, order.UpdateStatus(""))
	assert.Equal(t, StatusProcessing, order.Status)

	require.ErrorIs(t, order.UpdateStatus("Teleported"), ErrInvalidStatus)
	assert.Equal(t, StatusProcessing, order.Status)
}
