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

type WishlistService struct {
	wishlists *mongo.Collection
	now       func() time.Time
}

func NewWishlistService(db *mongo.Database) *WishlistService {
	return &WishlistService{
		wishlists: db.Collection("wishlists"),
		now:       time.Now,
	}
}

func (s *WishlistService) getOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var list models.Wishlist
	err := s.wishlists.FindOne(ctx, bson.M{"user_id": userID, "is_deleted": false}).Decode(&list)
	if err == nil {
		return &list, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Failed to fetch wishlist")
	}

	now := s.now()
	list = models.Wishlist{
		Base: models.Base{
			ID:        primitive.NewObjectID(),
			UniqueID:  utils.UniqueID(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Items:  []models.WishlistItem{},
	}
	if _, err := s.wishlists.InsertOne(ctx, list); err != nil {
		return nil, apperror.Internal("Failed to create wishlist")
	}
	return &list, nil
}

func (s *WishlistService) save(ctx context.Context, list *models.Wishlist) error {
	_, err := s.wishlists.UpdateOne(ctx, bson.M{"_id": list.ID}, bson.M{"$set": bson.M{
		"items":      list.Items,
		"updated_at": s.now(),
	}})
	if err != nil {
		return apperror.Internal("Failed to update wishlist")
	}
	return nil
}

func (s *WishlistService) Add(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, item := range list.Items {
		if item.ProductID == productID {
			list.Items[i].IsActive = true
			list.Items[i].IsDeleted = false
			if err := s.save(ctx, list); err != nil {
				return nil, err
			}
			return list, nil
		}
	}
	list.Items = append(list.Items, models.WishlistItem{ProductID: productID, IsActive: true})
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, item := range list.Items {
		if item.ProductID == productID && item.IsActive {
			list.Items[i].IsActive = false
			list.Items[i].IsDeleted = true
			if err := s.save(ctx, list); err != nil {
				return nil, err
			}
			return list, nil
		}
	}
	return nil, apperror.NotFound("Item not found in wishlist")
}

// Get returns the wishlist with withdrawn items excluded.
func (s *WishlistService) Get(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := list.Items[:0]
	for _, item := range list.Items {
		if item.IsActive && !item.IsDeleted {
			items = append(items, item)
		}
	}
	list.Items = items
	return list, nil
}
