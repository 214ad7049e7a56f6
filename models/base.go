package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base carries the bookkeeping fields every document shares. Records are
// soft-deleted only: is_deleted/is_active flip, nothing is removed.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UniqueID  string             `bson:"unique_id" json:"unique_id"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Interaction is an embedded like/bookmark entry on a product. Each entry is
// soft-deletable on its own so reads can exclude withdrawn interactions.
type Interaction struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
