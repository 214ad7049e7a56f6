package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SKU is a purchasable variant of a product.
type SKU struct {
	Name             string  `bson:"name" json:"name" validate:"required"`
	Stock            int     `bson:"stock" json:"stock" validate:"min=0"`
	OriginalPrice    float64 `bson:"original_price" json:"original_price" validate:"required,gt=0"`
	DiscountPrice    float64 `bson:"discount_price" json:"discount_price"`
	CommissionAmount float64 `bson:"commission_amount" json:"commission_amount"`
	IsActive         bool    `bson:"is_active" json:"is_active"`
}

type Comment struct {
	Interaction `bson:",inline"`
	Text        string `bson:"text" json:"text"`
}

type Rating struct {
	Interaction `bson:",inline"`
	Value       int `bson:"value" json:"value"`
}

type Tag struct {
	Name      string             `bson:"name" json:"name"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type Product struct {
	Base        `bson:",inline"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id" validate:"required"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	SKUs        []SKU              `bson:"skus" json:"skus" validate:"required,min=1,dive"`
	Images      []string           `bson:"images" json:"images"`
	Videos      []string           `bson:"videos,omitempty" json:"videos,omitempty"`
	Tags        []Tag              `bson:"tags" json:"tags"`
	Likes       []Interaction      `bson:"likes" json:"likes"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	Bookmarks   []Interaction      `bson:"bookmarks" json:"bookmarks"`
	Ratings     []Rating           `bson:"ratings" json:"ratings"`
}

type Category struct {
	Base     `bson:",inline"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	ImageURL string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ParentID primitive.ObjectID `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
}
