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

type CouponService struct {
	coupons *mongo.Collection
	now     func() time.Time
}

func NewCouponService(db *mongo.Database) *CouponService {
	return &CouponService{
		coupons: db.Collection("coupons"),
		now:     time.Now,
	}
}

// couponValid reports whether the coupon is usable at the given instant.
func couponValid(c models.Coupon, now time.Time) bool {
	return c.IsActive && !c.IsDeleted && c.ExpirationDate > now.UnixMilli()
}

func (s *CouponService) Create(ctx context.Context, coupon models.Coupon) (*models.Coupon, error) {
	err := s.coupons.FindOne(ctx, bson.M{"code": coupon.Code, "is_deleted": false}).Err()
	if err == nil {
		return nil, apperror.Conflict("Coupon with same code already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Error checking coupon existence")
	}

	now := s.now()
	coupon.Base = models.Base{
		ID:        primitive.NewObjectID(),
		UniqueID:  utils.UniqueID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.coupons.InsertOne(ctx, coupon); err != nil {
		return nil, apperror.Internal("Failed to create coupon")
	}
	return &coupon, nil
}

// FindByCode looks a coupon up for redemption. Reading an expired coupon
// retires it: is_active flips off and is_deleted on, so later reads skip it.
func (s *CouponService) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := s.coupons.FindOne(ctx, bson.M{"code": code, "is_deleted": false}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Coupon not found")
		}
		return nil, apperror.Internal("Failed to fetch coupon")
	}

	if !couponValid(coupon, s.now()) {
		_, _ = s.coupons.UpdateOne(ctx, bson.M{"_id": coupon.ID}, bson.M{"$set": bson.M{
			"is_active":  false,
			"is_deleted": true,
			"updated_at": s.now(),
		}})
		return nil, apperror.BadRequest("Coupon has expired")
	}
	return &coupon, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	cursor, err := s.coupons.Find(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, apperror.Internal("Failed to fetch coupons")
	}
	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, apperror.Internal("Failed to decode coupons")
	}
	return coupons, nil
}

func (s *CouponService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = s.now()
	res, err := s.coupons.UpdateOne(ctx, bson.M{"_id": id, "is_deleted": false}, bson.M{"$set": fields})
	if err != nil {
		return apperror.Internal("Failed to update coupon")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Coupon not found")
	}
	return nil
}

func (s *CouponService) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coupons.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "is_active": false, "updated_at": s.now()}},
	)
	if err != nil {
		return apperror.Internal("Failed to delete coupon")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Coupon not found")
	}
	return nil
}
