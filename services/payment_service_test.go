package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/models"
)

func TestNewPaymentKeepsGatewayTransactionID(t *testing.T) {
	userID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	// PayU/PhonePe fix the transaction id before the record exists; the
	// record must carry that exact id or the callback can never find it.
	payment := newPayment(userID, orderID, "txn_gateway_42", "PayU", 499, "INR", now)
	assert.Equal(t, "txn_gateway_42", payment.TransactionID)
	assert.Equal(t, userID, payment.UserID)
	assert.Equal(t, orderID, payment.OrderID)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "PayU", payment.Gateway)
}

func TestNewPaymentGeneratesTransactionID(t *testing.T) {
	userID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	now := time.Now()

	payment := newPayment(userID, orderID, "", models.PaymentMethodRazorpay, 100, "", now)
	require.NotEmpty(t, payment.TransactionID)
	assert.True(t, strings.HasPrefix(payment.TransactionID, "txn_"))
	assert.Equal(t, "INR", payment.Currency, "currency defaults when absent")

	other := newPayment(userID, orderID, "", models.PaymentMethodRazorpay, 100, "", now)
	assert.NotEqual(t, payment.TransactionID, other.TransactionID)
}
