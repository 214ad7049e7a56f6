package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/utils"
)

// OrderService owns the order lifecycle: creation at checkout, status
// transitions and their inventory/payout side effects.
type OrderService struct {
	client   *mongo.Client
	orders   *mongo.Collection
	products *ProductService
	users    *UserService
	now      func() time.Time
}

func NewOrderService(client *mongo.Client, db *mongo.Database, products *ProductService, users *UserService) *OrderService {
	return &OrderService{
		client:   client,
		orders:   db.Collection("orders"),
		products: products,
		users:    users,
		now:      time.Now,
	}
}

// StoreOrderRequest is the checkout payload. Line prices are computed by
// the caller and trusted as-is.
type StoreOrderRequest struct {
	Cart            []models.OrderLine `json:"cart" validate:"required,min=1,dive"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	TotalPrice      float64            `json:"totalPrice" validate:"required,gt=0"`
	Tax             float64            `json:"tax"`
	ShippingCharge  float64            `json:"shippingCharge"`
	DeliveredBy     string             `json:"deliveredBy"`
	PaymentInfo     models.PaymentInfo `json:"paymentInfo" validate:"required"`
	PaidAt          *time.Time         `json:"paidAt"`
}

// Store persists one order atomically. The payment method decides the
// created status/paidAt defaults; any failure aborts the transaction and no
// partial order becomes visible.
func (s *OrderService) Store(ctx context.Context, userID primitive.ObjectID, req StoreOrderRequest) (*models.Order, error) {
	now := s.now()
	status, paymentInfo, paidAt, err := paymentDefaults(req.PaymentInfo, req.PaidAt, now)
	if err != nil {
		return nil, err
	}

	cart := make([]models.OrderLine, 0, len(req.Cart))
	for _, line := range req.Cart {
		cart = append(cart, models.OrderLine{
			SellerID:                line.SellerID,
			ProductID:               line.ProductID,
			Quantity:                line.Quantity,
			Category:                line.Category,
			Description:             line.Description,
			OriginalPrice:           line.OriginalPrice,
			DiscountPrice:           line.DiscountPrice,
			ProductSkuName:          line.ProductSkuName,
			ProductCommissionAmount: line.ProductCommissionAmount,
		})
	}

	order := models.Order{
		Base: models.Base{
			ID:        primitive.NewObjectID(),
			UniqueID:  utils.UniqueID(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		Cart:            cart,
		ShippingAddress: req.ShippingAddress,
		Status:          status,
		PaymentInfo:     paymentInfo,
		TotalPrice:      req.TotalPrice,
		Tax:             req.Tax,
		ShippingCharge:  req.ShippingCharge,
		DeliveredBy:     req.DeliveredBy,
		PaidAt:          paidAt,
	}

	err = s.inTransaction(ctx, func(ctx context.Context) error {
		_, err := s.orders.InsertOne(ctx, order)
		return err
	})
	if err != nil {
		if ae, ok := err.(*apperror.Error); ok {
			return nil, ae
		}
		return nil, apperror.Internal("Failed to create order")
	}
	return &order, nil
}

// UpdateStatus moves an order to the given status and runs the
// status-specific side effects. Stock is committed only on the handoff to
// the delivery partner; the vendor payout happens on delivery.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, newStatus string) (*models.Order, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": orderID, "is_deleted": false}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Order not found")
		}
		return nil, apperror.Internal("Failed to fetch order")
	}

	if err := canTransition(order.Status, newStatus); err != nil {
		return nil, err
	}

	err = s.inTransaction(ctx, func(ctx context.Context) error {
		return s.applyTransition(ctx, &order, newStatus)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) applyTransition(ctx context.Context, order *models.Order, newStatus string) error {
	now := s.now()
	update := bson.M{
		"status":     newStatus,
		"updated_at": now,
	}

	switch newStatus {
	case models.OrderStatusTransferred:
		for _, line := range order.Cart {
			if err := s.products.UpdateProductStock(ctx, line.ProductID, line.ProductSkuName, line.Quantity); err != nil {
				return err
			}
		}

	case models.OrderStatusDelivered:
		commission := commissionTotal(order.Cart)
		serviceCharge := serviceChargeFor(order.DeliveredBy, order.ShippingCharge, commission)
		if len(order.Cart) > 0 {
			if err := s.users.UpdateVendorBalance(ctx, order.Cart[0].SellerID, order.TotalPrice-serviceCharge); err != nil {
				return err
			}
		}
		update["deliveredAt"] = now
		update["paymentInfo.status"] = models.PaymentStatusSucceeded
		if order.PaidAt == nil {
			update["paidAt"] = now
		}
	}

	_, err := s.orders.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": update})
	if err != nil {
		return apperror.Internal("Failed to update order status")
	}

	order.Status = newStatus
	order.UpdatedAt = now
	if newStatus == models.OrderStatusDelivered {
		order.DeliveredAt = &now
		order.PaymentInfo.Status = models.PaymentStatusSucceeded
		if order.PaidAt == nil {
			order.PaidAt = &now
		}
	}
	return nil
}

// Cancel moves the order to cancelled unless it already reached a terminal
// state.
func (s *OrderService) Cancel(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.OrderStatusCancelled)
}

// Assign records who physically delivers the order.
func (s *OrderService) Assign(ctx context.Context, orderID primitive.ObjectID, deliveredBy string) error {
	if deliveredBy != models.DeliveredByVendor && deliveredBy != models.DeliveredByAdmin {
		return apperror.BadRequest("Invalid delivery assignee")
	}
	res, err := s.orders.UpdateOne(ctx,
		bson.M{"_id": orderID, "is_deleted": false},
		bson.M{"$set": bson.M{"deliveredBy": deliveredBy, "updated_at": s.now()}},
	)
	if err != nil {
		return apperror.Internal("Failed to assign order")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Order not found")
	}
	return nil
}

// Delivered is the delivery confirmation entry point.
func (s *OrderService) Delivered(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.OrderStatusDelivered)
}

// FindByID returns a single order scoped to its owner.
func (s *OrderService) FindByID(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": orderID, "user_id": userID, "is_deleted": false}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Order not found")
		}
		return nil, apperror.Internal("Failed to fetch order")
	}
	return &order, nil
}

// List returns the user's orders, newest first, with an optional status
// filter and page/limit pagination.
func (s *OrderService) List(ctx context.Context, userID primitive.ObjectID, status string, page, limit int64) ([]models.Order, int64, error) {
	filter := bson.M{"user_id": userID, "is_deleted": false}
	if status != "" {
		filter["status"] = status
	}

	total, err := s.orders.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal("Failed to count orders")
	}

	findOptions := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.M{"created_at": -1})

	cursor, err := s.orders.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, apperror.Internal("Failed to fetch orders")
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, apperror.Internal("Failed to decode orders")
	}
	return orders, total, nil
}

// MarkPaid records a verified gateway payment against the order.
func (s *OrderService) MarkPaid(ctx context.Context, orderID, userID primitive.ObjectID, paymentID string) error {
	res, err := s.orders.UpdateOne(ctx,
		bson.M{"_id": orderID, "user_id": userID, "is_deleted": false},
		bson.M{"$set": bson.M{
			"paymentInfo.status": models.PaymentStatusSucceeded,
			"paymentInfo.id":     paymentID,
			"paidAt":             s.now(),
			"updated_at":         s.now(),
		}},
	)
	if err != nil {
		return apperror.Internal("Failed to update order payment")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Order not found")
	}
	return nil
}

// inTransaction runs fn inside a session transaction when the deployment
// supports one. StartSession succeeds even on a standalone; it is the
// first transactional command that fails there, so that error triggers the
// sequential fallback.
func (s *OrderService) inTransaction(ctx context.Context, fn func(context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		return fn(ctx)
	}
	return err
}

// transactionsUnsupported reports the IllegalOperation error a standalone
// mongod returns for the first command carrying a transaction number.
func transactionsUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == 20 || strings.Contains(ce.Message, "Transaction numbers")
	}
	return false
}
