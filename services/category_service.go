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

type CategoryService struct {
	categories *mongo.Collection
	now        func() time.Time
}

func NewCategoryService(db *mongo.Database) *CategoryService {
	return &CategoryService{
		categories: db.Collection("categories"),
		now:        time.Now,
	}
}

func (s *CategoryService) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	err := s.categories.FindOne(ctx, bson.M{"name": category.Name, "is_deleted": false}).Err()
	if err == nil {
		return nil, apperror.Conflict("Category with same name already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperror.Internal("Error checking category existence")
	}

	now := s.now()
	category.Base = models.Base{
		ID:        primitive.NewObjectID(),
		UniqueID:  utils.UniqueID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.categories.InsertOne(ctx, category); err != nil {
		return nil, apperror.Internal("Failed to create category")
	}
	return &category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{"is_deleted": false, "is_active": true})
	if err != nil {
		return nil, apperror.Internal("Failed to fetch categories")
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, apperror.Internal("Failed to decode categories")
	}
	return categories, nil
}

func (s *CategoryService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := s.categories.FindOne(ctx, bson.M{"_id": id, "is_deleted": false}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal("Failed to fetch category")
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = s.now()
	res, err := s.categories.UpdateOne(ctx, bson.M{"_id": id, "is_deleted": false}, bson.M{"$set": fields})
	if err != nil {
		return apperror.Internal("Failed to update category")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.Update(ctx, id, bson.M{"is_deleted": true, "is_active": false})
}
