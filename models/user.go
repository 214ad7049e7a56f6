package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserTypeCustomer = "Customer"
	UserTypeVendor   = "Vendor"
	UserTypeAdmin    = "Admin"
)

type User struct {
	Base             `bson:",inline"`
	FirstName        string             `bson:"first_name" json:"first_name" validate:"required"`
	LastName         string             `bson:"last_name" json:"last_name"`
	Email            string             `bson:"email" json:"email" validate:"required,email"`
	Password         string             `bson:"password" json:"-"`
	Mobile           string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	ImageURL         string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	UserType         string             `bson:"user_type" json:"user_type"`
	RoleID           primitive.ObjectID `bson:"role_id,omitempty" json:"role_id,omitempty"`
	AvailableBalance float64            `bson:"availableBalance" json:"availableBalance"`
	Followers        []Interaction      `bson:"followers" json:"followers"`
	Following        []Interaction      `bson:"following" json:"following"`
	ResetToken       string             `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry *time.Time         `bson:"reset_token_expiry,omitempty" json:"-"`
}

type Address struct {
	Base          `bson:",inline"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Mobile        string             `bson:"mobile" json:"mobile" validate:"required"`
	StreetAddress string             `bson:"street_address" json:"street_address" validate:"required"`
	City          string             `bson:"city" json:"city" validate:"required"`
	State         string             `bson:"state" json:"state" validate:"required"`
	Country       string             `bson:"country" json:"country"`
	ZipCode       string             `bson:"zip_code" json:"zip_code" validate:"required"`
	IsDefault     bool               `bson:"is_default" json:"is_default"`
}
