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

// CartService keeps one cart document per user. Mutations are
// read-modify-write: concurrent updates to the same cart are
// last-write-wins.
type CartService struct {
	carts    *mongo.Collection
	products *ProductService
	now      func() time.Time
}

func NewCartService(db *mongo.Database, products *ProductService) *CartService {
	return &CartService{
		carts:    db.Collection("carts"),
		products: products,
		now:      time.Now,
	}
}

func (s *CartService) getOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.carts.FindOne(ctx, bson.M{"user_id": userID, "is_deleted": false}).Decode(&cart)
	if err == nil {
		return &cart, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Failed to fetch cart")
	}

	now := s.now()
	cart = models.Cart{
		Base: models.Base{
			ID:        primitive.NewObjectID(),
			UniqueID:  utils.UniqueID(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Items:  []models.CartItem{},
	}
	if _, err := s.carts.InsertOne(ctx, cart); err != nil {
		return nil, apperror.Internal("Failed to create cart")
	}
	return &cart, nil
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) error {
	_, err := s.carts.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{"$set": bson.M{
		"items":      cart.Items,
		"updated_at": s.now(),
	}})
	if err != nil {
		return apperror.Internal("Failed to update cart")
	}
	return nil
}

// Add puts quantity of the SKU into the cart, merging with an existing line.
func (s *CartService) Add(ctx context.Context, userID, productID primitive.ObjectID, skuName string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperror.BadRequest("Quantity must be at least 1")
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	skuFound := false
	for _, sku := range product.SKUs {
		if sku.Name == skuName {
			skuFound = true
			break
		}
	}
	if !skuFound {
		return nil, apperror.NotFound("SKU not found")
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i, item := range cart.Items {
		if item.ProductID == productID && item.SkuName == skuName {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			SkuName:   skuName,
			Quantity:  quantity,
		})
	}
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity overwrites a line's quantity; zero removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID primitive.ObjectID, skuName string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, apperror.BadRequest("Quantity cannot be negative")
	}
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, item := range cart.Items {
		if item.ProductID == productID && item.SkuName == skuName {
			if quantity == 0 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			} else {
				cart.Items[i].Quantity = quantity
			}
			if err := s.save(ctx, cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}
	return nil, apperror.NotFound("Item not found in cart")
}

func (s *CartService) Remove(ctx context.Context, userID, productID primitive.ObjectID, skuName string) (*models.Cart, error) {
	return s.SetQuantity(ctx, userID, productID, skuName, 0)
}

func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	return s.getOrCreate(ctx, userID)
}

// Clear empties the cart, called after a verified payment.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	cart.Items = []models.CartItem{}
	return s.save(ctx, cart)
}
