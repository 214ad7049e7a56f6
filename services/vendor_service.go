package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/utils"
)

type VendorService struct {
	vendors *mongo.Collection
	users   *UserService
	now     func() time.Time
}

func NewVendorService(db *mongo.Database, users *UserService) *VendorService {
	return &VendorService{
		vendors: db.Collection("vendors"),
		users:   users,
		now:     time.Now,
	}
}

type VendorApplication struct {
	FirmName  string `json:"firm_name" validate:"required"`
	GSTNumber string `json:"gst_number"`
	Mobile    string `json:"mobile" validate:"required"`
	Address   string `json:"address"`
}

// Apply files a vendor application for the user. Firm names are unique and
// a user holds at most one live application.
func (s *VendorService) Apply(ctx context.Context, userID primitive.ObjectID, req VendorApplication) (*models.Vendor, error) {
	err := s.vendors.FindOne(ctx, bson.M{"firm_name": req.FirmName, "is_deleted": false}).Err()
	if err == nil {
		return nil, apperror.Conflict("Vendor with same firm name already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Error checking vendor existence")
	}

	err = s.vendors.FindOne(ctx, bson.M{"user_id": userID, "is_deleted": false}).Err()
	if err == nil {
		return nil, apperror.Conflict("Vendor application already exists for this user")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Error checking vendor existence")
	}

	now := s.now()
	vendor := models.Vendor{
		Base: models.Base{
			ID:        primitive.NewObjectID(),
			UniqueID:  utils.UniqueID(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    userID,
		FirmName:  req.FirmName,
		GSTNumber: req.GSTNumber,
		Mobile:    req.Mobile,
		Address:   req.Address,
		Status:    models.VendorStatusPending,
	}
	if _, err := s.vendors.InsertOne(ctx, vendor); err != nil {
		return nil, apperror.Internal("Failed to save vendor application")
	}
	return &vendor, nil
}

// ListByStatus returns applications in the given state.
func (s *VendorService) ListByStatus(ctx context.Context, status string) ([]models.Vendor, error) {
	filter := bson.M{"is_deleted": false}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := s.vendors.Find(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch vendors")
	}
	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, apperror.Internal("Failed to decode vendors")
	}
	return vendors, nil
}

// UpdateStatus approves or rejects an application. Approval flips the
// linked user's account type to Vendor.
func (s *VendorService) UpdateStatus(ctx context.Context, vendorID primitive.ObjectID, status string) (*models.Vendor, error) {
	if status != models.VendorStatusSuccess && status != models.VendorStatusRejected {
		return nil, apperror.BadRequest("Invalid vendor status")
	}

	var vendor models.Vendor
	err := s.vendors.FindOne(ctx, bson.M{"_id": vendorID, "is_deleted": false}).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Vendor not found")
		}
		return nil, apperror.Internal("Failed to fetch vendor")
	}

	_, err = s.vendors.UpdateOne(ctx, bson.M{"_id": vendorID}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": s.now(),
	}})
	if err != nil {
		return nil, apperror.Internal("Failed to update vendor status")
	}
	vendor.Status = status

	if status == models.VendorStatusSuccess {
		if err := s.users.SetUserType(ctx, vendor.UserID, models.UserTypeVendor); err != nil {
			return nil, err
		}
	}
	return &vendor, nil
}

func (s *VendorService) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.vendors.FindOne(ctx, bson.M{"user_id": userID, "is_deleted": false}).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Vendor not found")
		}
		return nil, apperror.Internal("Failed to fetch vendor")
	}
	return &vendor, nil
}
