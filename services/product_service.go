package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/storage"
	"github.com/pixeldesignindia/organic-api/utils"
)

type ProductService struct {
	products *mongo.Collection
	uploader *storage.Uploader
	now      func() time.Time
}

func NewProductService(db *mongo.Database, uploader *storage.Uploader) *ProductService {
	return &ProductService{
		products: db.Collection("products"),
		uploader: uploader,
		now:      time.Now,
	}
}

func (s *ProductService) Create(ctx context.Context, ownerID primitive.ObjectID, product models.Product) (*models.Product, error) {
	now := s.now()
	product.Base = models.Base{
		ID:        primitive.NewObjectID(),
		UniqueID:  utils.UniqueID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	product.UserID = ownerID
	for i := range product.SKUs {
		product.SKUs[i].IsActive = true
	}
	if product.Tags == nil {
		product.Tags = []models.Tag{}
	}
	product.Likes = []models.Interaction{}
	product.Comments = []models.Comment{}
	product.Bookmarks = []models.Interaction{}
	product.Ratings = []models.Rating{}

	if _, err := s.products.InsertOne(ctx, product); err != nil {
		return nil, apperror.Internal("Failed to create product")
	}
	return &product, nil
}

func (s *ProductService) find(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id, "is_deleted": false}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Product not found")
		}
		return nil, apperror.Internal("Failed to fetch product")
	}
	return &product, nil
}

// FindByID returns the product with soft-deleted embedded interactions
// stripped out.
func (s *ProductService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	pruneInactive(product)
	return product, nil
}

// pruneInactive drops soft-deleted/inactive embedded docs from every
// embedded collection before the product is returned to a reader.
func pruneInactive(p *models.Product) {
	likes := p.Likes[:0]
	for _, l := range p.Likes {
		if l.IsActive && !l.IsDeleted {
			likes = append(likes, l)
		}
	}
	p.Likes = likes

	comments := p.Comments[:0]
	for _, c := range p.Comments {
		if c.IsActive && !c.IsDeleted {
			comments = append(comments, c)
		}
	}
	p.Comments = comments

	bookmarks := p.Bookmarks[:0]
	for _, b := range p.Bookmarks {
		if b.IsActive && !b.IsDeleted {
			bookmarks = append(bookmarks, b)
		}
	}
	p.Bookmarks = bookmarks

	ratings := p.Ratings[:0]
	for _, r := range p.Ratings {
		if r.IsActive && !r.IsDeleted {
			ratings = append(ratings, r)
		}
	}
	p.Ratings = ratings

	tags := p.Tags[:0]
	for _, t := range p.Tags {
		if t.IsActive && !t.IsDeleted {
			tags = append(tags, t)
		}
	}
	p.Tags = tags
}

// Search lists products by optional name/category filter with pagination.
func (s *ProductService) Search(ctx context.Context, name string, categoryID primitive.ObjectID, page, limit int64) ([]models.Product, int64, error) {
	filter := bson.M{"is_deleted": false, "is_active": true}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if !categoryID.IsZero() {
		filter["category_id"] = categoryID
	}

	total, err := s.products.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal("Failed to count products")
	}

	findOptions := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.M{"created_at": -1})

	cursor, err := s.products.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, apperror.Internal("Failed to fetch products")
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, apperror.Internal("Failed to decode products")
	}
	for i := range products {
		pruneInactive(&products[i])
	}
	return products, total, nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = s.now()
	res, err := s.products.UpdateOne(ctx, bson.M{"_id": id, "is_deleted": false}, bson.M{"$set": fields})
	if err != nil {
		return apperror.Internal("Failed to update product")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Product not found")
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.Update(ctx, id, bson.M{"is_deleted": true, "is_active": false})
}

// decrementSKU applies a stock decrement to the named SKU and returns the
// updated slice. Requested quantity beyond current stock is an error.
func decrementSKU(skus []models.SKU, skuName string, quantity int) ([]models.SKU, error) {
	for i := range skus {
		if skus[i].Name != skuName {
			continue
		}
		if skus[i].Stock < quantity {
			return nil, apperror.BadRequest("Not enough stock")
		}
		out := make([]models.SKU, len(skus))
		copy(out, skus)
		out[i].Stock -= quantity
		return out, nil
	}
	return nil, apperror.NotFound("SKU not found")
}

// UpdateProductStock decrements the named SKU's stock by quantity. Called
// when an order is handed to the delivery partner; stock is not touched at
// order creation.
func (s *ProductService) UpdateProductStock(ctx context.Context, productID primitive.ObjectID, skuName string, quantity int) error {
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	skus, err := decrementSKU(product.SKUs, skuName, quantity)
	if err != nil {
		return err
	}
	return s.Update(ctx, productID, bson.M{"skus": skus})
}

// AddLike records a like; a withdrawn like from the same user is revived
// instead of duplicated.
func (s *ProductService) AddLike(ctx context.Context, productID, userID primitive.ObjectID) error {
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	for i, like := range product.Likes {
		if like.UserID == userID {
			product.Likes[i].IsActive = true
			product.Likes[i].IsDeleted = false
			return s.Update(ctx, productID, bson.M{"likes": product.Likes})
		}
	}
	product.Likes = append(product.Likes, models.Interaction{
		UserID:    userID,
		IsActive:  true,
		CreatedAt: s.now(),
	})
	return s.Update(ctx, productID, bson.M{"likes": product.Likes})
}

func (s *ProductService) RemoveLike(ctx context.Context, productID, userID primitive.ObjectID) error {
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	for i, like := range product.Likes {
		if like.UserID == userID && like.IsActive {
			product.Likes[i].IsActive = false
			product.Likes[i].IsDeleted = true
			return s.Update(ctx, productID, bson.M{"likes": product.Likes})
		}
	}
	return apperror.NotFound("Like not found")
}

func (s *ProductService) AddComment(ctx context.Context, productID, userID primitive.ObjectID, text string) error {
	if text == "" {
		return apperror.BadRequest("Comment text is required")
	}
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	product.Comments = append(product.Comments, models.Comment{
		Interaction: models.Interaction{
			UserID:    userID,
			IsActive:  true,
			CreatedAt: s.now(),
		},
		Text: text,
	})
	return s.Update(ctx, productID, bson.M{"comments": product.Comments})
}

func (s *ProductService) AddBookmark(ctx context.Context, productID, userID primitive.ObjectID) error {
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	for i, b := range product.Bookmarks {
		if b.UserID == userID {
			product.Bookmarks[i].IsActive = true
			product.Bookmarks[i].IsDeleted = false
			return s.Update(ctx, productID, bson.M{"bookmarks": product.Bookmarks})
		}
	}
	product.Bookmarks = append(product.Bookmarks, models.Interaction{
		UserID:    userID,
		IsActive:  true,
		CreatedAt: s.now(),
	})
	return s.Update(ctx, productID, bson.M{"bookmarks": product.Bookmarks})
}

func (s *ProductService) RemoveBookmark(ctx context.Context, productID, userID primitive.ObjectID) error {
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	for i, b := range product.Bookmarks {
		if b.UserID == userID && b.IsActive {
			product.Bookmarks[i].IsActive = false
			product.Bookmarks[i].IsDeleted = true
			return s.Update(ctx, productID, bson.M{"bookmarks": product.Bookmarks})
		}
	}
	return apperror.NotFound("Bookmark not found")
}

// HasBookmarked reports whether the user holds an active bookmark.
func (s *ProductService) HasBookmarked(ctx context.Context, productID, userID primitive.ObjectID) (bool, error) {
	product, err := s.find(ctx, productID)
	if err != nil {
		return false, err
	}
	for _, b := range product.Bookmarks {
		if b.UserID == userID && b.IsActive && !b.IsDeleted {
			return true, nil
		}
	}
	return false, nil
}

func (s *ProductService) AddRating(ctx context.Context, productID, userID primitive.ObjectID, value int) error {
	if value < 1 || value > 5 {
		return apperror.BadRequest("Rating must be between 1 and 5")
	}
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	for i, r := range product.Ratings {
		if r.UserID == userID {
			product.Ratings[i].Value = value
			product.Ratings[i].IsActive = true
			product.Ratings[i].IsDeleted = false
			return s.Update(ctx, productID, bson.M{"ratings": product.Ratings})
		}
	}
	product.Ratings = append(product.Ratings, models.Rating{
		Interaction: models.Interaction{
			UserID:    userID,
			IsActive:  true,
			CreatedAt: s.now(),
		},
		Value: value,
	})
	return s.Update(ctx, productID, bson.M{"ratings": product.Ratings})
}

func (s *ProductService) AddTag(ctx context.Context, productID, userID primitive.ObjectID, name string) error {
	if name == "" {
		return apperror.BadRequest("Tag name is required")
	}
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}
	product.Tags = append(product.Tags, models.Tag{
		Name:      name,
		UserID:    userID,
		IsActive:  true,
		CreatedAt: s.now(),
	})
	return s.Update(ctx, productID, bson.M{"tags": product.Tags})
}

// UpdateImage stores a base64 image payload and appends the object URL.
func (s *ProductService) UpdateImage(ctx context.Context, productID primitive.ObjectID, payload string) (string, error) {
	product, err := s.find(ctx, productID)
	if err != nil {
		return "", err
	}
	url, err := s.uploader.UploadBase64(ctx, storage.PrefixProductImage, payload, "jpg")
	if err != nil {
		return "", err
	}
	product.Images = append(product.Images, url)
	if err := s.Update(ctx, productID, bson.M{"images": product.Images}); err != nil {
		return "", err
	}
	return url, nil
}

// UpdateVideo stores a base64 video payload and appends the object URL.
func (s *ProductService) UpdateVideo(ctx context.Context, productID primitive.ObjectID, payload string) (string, error) {
	product, err := s.find(ctx, productID)
	if err != nil {
		return "", err
	}
	url, err := s.uploader.UploadBase64(ctx, storage.PrefixProductVideo, payload, "mp4")
	if err != nil {
		return "", err
	}
	product.Videos = append(product.Videos, url)
	if err := s.Update(ctx, productID, bson.M{"videos": product.Videos}); err != nil {
		return "", err
	}
	return url, nil
}
