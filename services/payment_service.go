package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/payments"
	"github.com/pixeldesignindia/organic-api/utils"
)

// PaymentService keeps the gateway-side bookkeeping records and reconciles
// inbound gateway callbacks against them.
type PaymentService struct {
	paymentsCol *mongo.Collection
	orders      *OrderService
	payu        payments.PayU
	now         func() time.Time
}

func NewPaymentService(db *mongo.Database, orders *OrderService, payu payments.PayU) *PaymentService {
	return &PaymentService{
		paymentsCol: db.Collection("payments"),
		orders:      orders,
		payu:        payu,
		now:         time.Now,
	}
}

// newPayment builds a pending payment record. The transaction id must be
// the one the gateway sees: flows that fix it before the record exists
// (PayU txnid, PhonePe merchantTransactionId) pass it in; an empty id
// gets a generated one.
func newPayment(userID, orderID primitive.ObjectID, transactionID, gateway string, amount float64, currency string, now time.Time) models.Payment {
	if transactionID == "" {
		transactionID = utils.TransactionID()
	}
	if currency == "" {
		currency = "INR"
	}
	return models.Payment{
		Base: models.Base{
			ID:        primitive.NewObjectID(),
			UniqueID:  utils.UniqueID(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		OrderID:       orderID,
		TransactionID: transactionID,
		Gateway:       gateway,
		Amount:        amount,
		Currency:      currency,
		Status:        models.PaymentStatusPending,
	}
}

// Create opens a payment record in pending state, keyed by transactionId.
// An existing record under the same transaction id is returned as-is so a
// re-issued gateway request does not fork the bookkeeping.
func (s *PaymentService) Create(ctx context.Context, userID, orderID primitive.ObjectID, transactionID, gateway string, amount float64, currency string) (*models.Payment, error) {
	if transactionID != "" {
		existing, err := s.FindByTransactionID(ctx, transactionID)
		if err == nil {
			return existing, nil
		}
		if apperror.StatusOf(err) != 404 {
			return nil, err
		}
	}

	payment := newPayment(userID, orderID, transactionID, gateway, amount, currency, s.now())
	if _, err := s.paymentsCol.InsertOne(ctx, payment); err != nil {
		return nil, apperror.Internal("Failed to create payment record")
	}
	return &payment, nil
}

func (s *PaymentService) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.paymentsCol.FindOne(ctx, bson.M{"transactionId": transactionID, "is_deleted": false}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Payment not found")
		}
		return nil, apperror.Internal("Failed to fetch payment")
	}
	return &payment, nil
}

// UpdateStatus mutates the payment record's status and gateway reference.
func (s *PaymentService) UpdateStatus(ctx context.Context, transactionID, gatewayTxnID, status string) error {
	res, err := s.paymentsCol.UpdateOne(ctx,
		bson.M{"transactionId": transactionID, "is_deleted": false},
		bson.M{"$set": bson.M{
			"status":       status,
			"gatewayTxnId": gatewayTxnID,
			"updated_at":   s.now(),
		}},
	)
	if err != nil {
		return apperror.Internal("Failed to update payment")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Payment not found")
	}
	return nil
}

// PayUCallback is the inbound gateway notification. The reverse hash is
// verified before any state changes; a verified success marks both the
// payment record and the order paid.
type PayUCallback struct {
	TxnID       string `json:"txnid" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	ProductInfo string `json:"productinfo" validate:"required"`
	FirstName   string `json:"firstname" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Hash        string `json:"hash" validate:"required"`
	MihpayID    string `json:"mihpayid"`
}

func (s *PaymentService) HandlePayUCallback(ctx context.Context, cb PayUCallback) error {
	err := s.payu.VerifyCallback(payments.PayURequest{
		TxnID:       cb.TxnID,
		Amount:      cb.Amount,
		ProductInfo: cb.ProductInfo,
		FirstName:   cb.FirstName,
		Email:       cb.Email,
	}, cb.Status, cb.Hash)
	if err != nil {
		return err
	}

	payment, err := s.FindByTransactionID(ctx, cb.TxnID)
	if err != nil {
		return err
	}

	status := models.PaymentStatusFailed
	if cb.Status == "success" {
		status = models.PaymentStatusSucceeded
	}
	if err := s.UpdateStatus(ctx, cb.TxnID, cb.MihpayID, status); err != nil {
		return err
	}

	if status == models.PaymentStatusSucceeded && !payment.OrderID.IsZero() {
		return s.orders.MarkPaid(ctx, payment.OrderID, payment.UserID, cb.MihpayID)
	}
	return nil
}
