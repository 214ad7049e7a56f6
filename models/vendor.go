package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	VendorStatusPending  = "PENDING"
	VendorStatusSuccess  = "SUCCESS"
	VendorStatusRejected = "REJECTED"
)

// Vendor is the application record linked 1:1 to a User. Approval flips
// the linked user's user_type to Vendor.
type Vendor struct {
	Base      `bson:",inline"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id" validate:"required"`
	FirmName  string             `bson:"firm_name" json:"firm_name" validate:"required"`
	GSTNumber string             `bson:"gst_number,omitempty" json:"gst_number,omitempty"`
	Mobile    string             `bson:"mobile" json:"mobile" validate:"required"`
	Address   string             `bson:"address" json:"address"`
	Status    string             `bson:"status" json:"status"`
}
