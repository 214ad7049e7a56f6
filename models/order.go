package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Transitions are one-directional: delivered and
// cancelled are terminal.
const (
	OrderStatusPlaced      = "placed"
	OrderStatusTransferred = "Transferred to delivery partner"
	OrderStatusProcessing  = "processing"
	OrderStatusShipped     = "shipped"
	OrderStatusDelivered   = "delivered"
	OrderStatusCancelled   = "cancelled"
)

const (
	PaymentMethodCOD      = "COD"
	PaymentMethodRazorpay = "Razorpay"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "Succeeded"
	PaymentStatusFailed    = "Failed"
)

const (
	DeliveredByVendor = "Vendor"
	DeliveredByAdmin  = "Admin"
)

// OrderLine is one cart line frozen into the order at checkout. user_id is
// the selling user, kept for commission and stock bookkeeping.
type OrderLine struct {
	SellerID                primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProductID               primitive.ObjectID `bson:"productId" json:"productId" validate:"required"`
	Quantity                int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Category                string             `bson:"category" json:"category"`
	Description             string             `bson:"description" json:"description"`
	OriginalPrice           float64            `bson:"originalPrice" json:"originalPrice"`
	DiscountPrice           float64            `bson:"discountPrice" json:"discountPrice"`
	ProductSkuName          string             `bson:"productSkuName" json:"productSkuName" validate:"required"`
	ProductCommissionAmount float64            `bson:"productCommissionAmount" json:"productCommissionAmount"`
}

type PaymentInfo struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	Type   string `bson:"type" json:"type" validate:"required"`
	Status string `bson:"status" json:"status"`
}

type Order struct {
	Base            `bson:",inline"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	Cart            []OrderLine        `bson:"cart" json:"cart" validate:"required,min=1,dive"`
	ShippingAddress Address            `bson:"shippingAddress" json:"shippingAddress"`
	Status          string             `bson:"status" json:"status"`
	PaymentInfo     PaymentInfo        `bson:"paymentInfo" json:"paymentInfo"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice" validate:"required,gt=0"`
	Tax             float64            `bson:"tax" json:"tax"`
	ShippingCharge  float64            `bson:"shippingCharge" json:"shippingCharge"`
	DeliveredBy     string             `bson:"deliveredBy,omitempty" json:"deliveredBy,omitempty"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// Payment is the gateway-side bookkeeping record, separate from the order
// and correlated by transaction id.
type Payment struct {
	Base          `bson:",inline"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	OrderID       primitive.ObjectID `bson:"order_id,omitempty" json:"order_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId" validate:"required"`
	GatewayTxnID  string             `bson:"gatewayTxnId,omitempty" json:"gatewayTxnId,omitempty"`
	Gateway       string             `bson:"gateway" json:"gateway"`
	Amount        float64            `bson:"amount" json:"amount" validate:"required,gt=0"`
	Currency      string             `bson:"currency" json:"currency"`
	Status        string             `bson:"status" json:"status"`
}
