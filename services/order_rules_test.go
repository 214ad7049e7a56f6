package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
)

func TestPaymentDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("cod", func(t *testing.T) {
		status, info, paidAt, err := paymentDefaults(models.PaymentInfo{
			Type: models.PaymentMethodCOD,
			ID:   "pay_stale",
		}, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPlaced, status)
		assert.Equal(t, models.PaymentStatusPending, info.Status)
		assert.Empty(t, info.ID, "a gateway id makes no sense on COD")
		assert.Nil(t, paidAt)
	})

	t.Run("razorpay", func(t *testing.T) {
		status, info, paidAt, err := paymentDefaults(models.PaymentInfo{
			Type: models.PaymentMethodRazorpay,
			ID:   "pay_Nxq5d6e7f8",
		}, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPlaced, status)
		assert.Equal(t, models.PaymentStatusSucceeded, info.Status)
		assert.Equal(t, "pay_Nxq5d6e7f8", info.ID)
		require.NotNil(t, paidAt)
		assert.Equal(t, now, *paidAt)
	})

	t.Run("razorpay keeps explicit status", func(t *testing.T) {
		_, info, _, err := paymentDefaults(models.PaymentInfo{
			Type:   models.PaymentMethodRazorpay,
			Status: models.PaymentStatusFailed,
		}, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, info.Status)
	})

	t.Run("razorpay keeps explicit paidAt", func(t *testing.T) {
		earlier := now.Add(-2 * time.Hour)
		_, _, paidAt, err := paymentDefaults(models.PaymentInfo{
			Type: models.PaymentMethodRazorpay,
		}, &earlier, now)
		require.NoError(t, err)
		require.NotNil(t, paidAt)
		assert.Equal(t, earlier, *paidAt)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, _, _, err := paymentDefaults(models.PaymentInfo{Type: "UPI"}, nil, now)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})
}

func TestCommissionTotal(t *testing.T) {
	cart := []models.OrderLine{
		{Quantity: 2, ProductCommissionAmount: 15},
		{Quantity: 1, ProductCommissionAmount: 7.5},
		{Quantity: 3, ProductCommissionAmount: 0},
	}
	assert.Equal(t, 37.5, commissionTotal(cart))
	assert.Zero(t, commissionTotal(nil))
}

func TestServiceChargeFor(t *testing.T) {
	tests := []struct {
		name        string
		deliveredBy string
		want        float64
	}{
		{"vendor absorbs commission only", models.DeliveredByVendor, 30},
		{"admin delivery adds shipping", models.DeliveredByAdmin, 80},
		{"unassigned charges nothing", "", 0},
		{"unknown charges nothing", "Courier", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serviceChargeFor(tc.deliveredBy, 50, 30))
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{"placed to transferred", models.OrderStatusPlaced, models.OrderStatusTransferred, false},
		{"shipped to delivered", models.OrderStatusShipped, models.OrderStatusDelivered, false},
		{"placed to cancelled", models.OrderStatusPlaced, models.OrderStatusCancelled, false},
		{"shipped to cancelled", models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{"delivered is terminal", models.OrderStatusDelivered, models.OrderStatusShipped, true},
		{"cancelled is terminal", models.OrderStatusCancelled, models.OrderStatusPlaced, true},
		{"repeated delivered", models.OrderStatusDelivered, models.OrderStatusDelivered, true},
		{"repeated transferred", models.OrderStatusTransferred, models.OrderStatusTransferred, true},
		{"no return to transferred after shipping", models.OrderStatusShipped, models.OrderStatusTransferred, true},
		{"no return to transferred after processing", models.OrderStatusProcessing, models.OrderStatusTransferred, true},
		{"no backwards to placed", models.OrderStatusProcessing, models.OrderStatusPlaced, true},
		{"unknown next status", models.OrderStatusPlaced, "misplaced", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := canTransition(tc.current, tc.next)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, apperror.StatusOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
