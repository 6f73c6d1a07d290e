package order_test

import (
	"fmt"
	"testing"

	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Constants(t *testing.T) {
	t.Run("should keep lifecycle order", func(t *testing.T) {
		assert.Equal(t, 0, int(order.OrderStatusUnknown))
		assert.Less(t, order.OrderPending, order.OrderPreparing)
		assert.Less(t, order.OrderPreparing, order.OrderCompleted)
		assert.Equal(t, []order.OrderStatus{order.OrderPending, order.OrderPreparing, order.OrderCompleted}, order.OrderStatuses())
	})

	t.Run("should use wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.OrderPending.String())
		assert.Equal(t, "preparing", order.OrderPreparing.String())
		assert.Equal(t, "completed", order.OrderCompleted.String())
		assert.Equal(t, "unknown", order.OrderStatus(99).String())
	})
}

func TestParseOrderStatus(t *testing.T) {
	for _, status := range order.OrderStatuses() {
		t.Run(fmt.Sprintf("should parse %s", status), func(t *testing.T) {
			parsed, err := order.ParseOrderStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	t.Run("should reject delivery-only names", func(t *testing.T) {
		_, err := order.ParseOrderStatus("delivered")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orderStatus is invalid")
	})
}

func TestOrderStatus_AdvanceTo(t *testing.T) {
	tests := []struct {
		from    order.OrderStatus
		to      order.OrderStatus
		allowed bool
	}{
		{order.OrderPending, order.OrderPreparing, true},
		{order.OrderPending, order.OrderCompleted, true},
		{order.OrderPreparing, order.OrderCompleted, true},
		{order.OrderPending, order.OrderPending, false},
		{order.OrderPreparing, order.OrderPending, false},
		{order.OrderCompleted, order.OrderPreparing, false},
		{order.OrderCompleted, order.OrderCompleted, false},
		{order.OrderPending, order.OrderStatusUnknown, false},
		{order.OrderStatusUnknown, order.OrderPreparing, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			got, err := tt.from.AdvanceTo(tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
				return
			}
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Equal(t, order.OrderStatusUnknown, got)
		})
	}

	t.Run("should name both statuses in the error", func(t *testing.T) {
		err := order.OrderCompleted.ValidateAdvanceTo(order.OrderPreparing)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot move from completed to preparing")
	})
}

func TestDeliveryStatus_Constants(t *testing.T) {
	t.Run("should use wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.DeliveryPending.String())
		assert.Equal(t, "inProgress", order.DeliveryInProgress.String())
		assert.Equal(t, "delivered", order.DeliveryDelivered.String())
		assert.Equal(t, "unknown", order.DeliveryStatusUnknown.String())
	})

	t.Run("should mark only delivered as terminal", func(t *testing.T) {
		assert.False(t, order.DeliveryPending.IsTerminal())
		assert.False(t, order.DeliveryInProgress.IsTerminal())
		assert.True(t, order.DeliveryDelivered.IsTerminal())
	})
}

func TestParseDeliveryStatus(t *testing.T) {
	for _, status := range order.DeliveryStatuses() {
		t.Run(fmt.Sprintf("should parse %s", status), func(t *testing.T) {
			parsed, err := order.ParseDeliveryStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	t.Run("should be case sensitive like the wire format", func(t *testing.T) {
		_, err := order.ParseDeliveryStatus("inprogress")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryStatus_AdvanceTo(t *testing.T) {
	tests := []struct {
		from    order.DeliveryStatus
		to      order.DeliveryStatus
		allowed bool
	}{
		{order.DeliveryPending, order.DeliveryInProgress, true},
		{order.DeliveryPending, order.DeliveryDelivered, true},
		{order.DeliveryInProgress, order.DeliveryDelivered, true},
		{order.DeliveryInProgress, order.DeliveryInProgress, false},
		{order.DeliveryDelivered, order.DeliveryInProgress, false},
		{order.DeliveryDelivered, order.DeliveryDelivered, false},
		{order.DeliveryDelivered, order.DeliveryPending, false},
		{order.DeliveryPending, order.DeliveryStatus(7), false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			got, err := tt.from.AdvanceTo(tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.DeliveryStatusUnknown, got)
		})
	}
}

func TestStatus_Text(t *testing.T) {
	t.Run("should unmarshal both axes from text", func(t *testing.T) {
		var os order.OrderStatus
		var ds order.DeliveryStatus

		require.NoError(t, os.UnmarshalText([]byte("preparing")))
		require.NoError(t, ds.UnmarshalText([]byte("inProgress")))

		assert.Equal(t, order.OrderPreparing, os)
		assert.Equal(t, order.DeliveryInProgress, ds)
	})

	t.Run("should refuse to marshal unknown values", func(t *testing.T) {
		_, err := order.OrderStatusUnknown.MarshalText()
		require.Error(t, err)

		_, err = order.DeliveryStatusUnknown.MarshalText()
		require.Error(t, err)
	})
}
