package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderConfirmed, OrderShipped, true},
		{OrderShipped, OrderDelivered, true},

		// Skipping steps is rejected.
		{OrderPending, OrderShipped, false},
		{OrderPending, OrderDelivered, false},
		{OrderConfirmed, OrderDelivered, false},

		// Cancellation only from pending.
		{OrderConfirmed, OrderCancelled, false},
		{OrderShipped, OrderCancelled, false},

		// No moving backwards.
		{OrderConfirmed, OrderPending, false},
		{OrderShipped, OrderConfirmed, false},
		{OrderDelivered, OrderShipped, false},

		// Terminal states have no successors.
		{OrderDelivered, OrderConfirmed, false},
		{OrderCancelled, OrderConfirmed, false},
		{OrderCancelled, OrderPending, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderConfirmed.Terminal())
	assert.False(t, OrderShipped.Terminal())

	for _, s := range []OrderStatus{OrderDelivered, OrderCancelled} {
		assert.Empty(t, s.NextStatuses(), "terminal status %s must have no successors", s)
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	s, ok := ParseOrderStatus(" Shipped ")
	require.True(t, ok)
	assert.Equal(t, OrderShipped, s)

	_, ok = ParseOrderStatus("returned")
	assert.False(t, ok)
	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}

func TestOrder_Cancellable(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Order{Status: OrderPending}).Cancellable())
	for _, s := range []OrderStatus{OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.False(t, (&Order{Status: s}).Cancellable(), "status %s", s)
	}
}

func TestOrder_Payable(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Order{Status: OrderPending, PaymentStatus: PaymentUnpaid}).Payable())
	assert.False(t, (&Order{Status: OrderPending, PaymentStatus: PaymentPaid}).Payable())
	// A cancelled order must stop offering payment.
	assert.False(t, (&Order{Status: OrderCancelled, PaymentStatus: PaymentUnpaid}).Payable())
	assert.False(t, (&Order{Status: OrderConfirmed, PaymentStatus: PaymentPaid}).Payable())
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateOrderRequest{BookID: "b1", Phone: "01700000000", Address: "12 Mirpur Rd, Dhaka"}
	require.NoError(t, req.Validate())

	assert.Error(t, (&CreateOrderRequest{Phone: "x", Address: "y"}).Validate())
	assert.Error(t, (&CreateOrderRequest{BookID: "b1", Address: "y"}).Validate())
	assert.Error(t, (&CreateOrderRequest{BookID: "b1", Phone: "x"}).Validate())
}

func TestCreateOrderRequest_ValidateReportsValidationErrors(t *testing.T) {
	t.Parallel()

	// Missing input is a caller mistake, not a gateway fault.
	err := (&CreateOrderRequest{BookID: "b1", Address: "12 Mirpur Rd, Dhaka"}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "phone", apperrors.GetField(err))
}
