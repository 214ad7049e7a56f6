package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId" validate:"required"`
	SkuName   string             `bson:"skuName" json:"skuName" validate:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// Cart is one document per user. Updates are read-modify-write with
// last-write-wins semantics between concurrent requests.
type Cart struct {
	Base   `bson:",inline"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items  []CartItem         `bson:"items" json:"items"`
}

type WishlistItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
}

type Wishlist struct {
	Base   `bson:",inline"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items  []WishlistItem     `bson:"items" json:"items"`
}

type Coupon struct {
	Base           `bson:",inline"`
	Code           string  `bson:"code" json:"code" validate:"required"`
	Discount       float64 `bson:"discount" json:"discount" validate:"required,gt=0"`
	ExpirationDate int64   `bson:"expirationDate" json:"expirationDate" validate:"required"`
}
