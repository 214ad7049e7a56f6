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

// ContentService manages the banner/FAQ/intro blocks shown to every
// visitor, plus key/value configuration documents.
type ContentService struct {
	banners        *mongo.Collection
	faqs           *mongo.Collection
	intros         *mongo.Collection
	configurations *mongo.Collection
	uploader       *storage.Uploader
	now            func() time.Time
}

func NewContentService(db *mongo.Database, uploader *storage.Uploader) *ContentService {
	return &ContentService{
		banners:        db.Collection("banners"),
		faqs:           db.Collection("faqs"),
		intros:         db.Collection("intros"),
		configurations: db.Collection("configurations"),
		uploader:       uploader,
		now:            time.Now,
	}
}

func (s *ContentService) newBase() models.Base {
	now := s.now()
	return models.Base{
		ID:        primitive.NewObjectID(),
		UniqueID:  utils.UniqueID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *ContentService) CreateBanner(ctx context.Context, banner models.Banner, imagePayload string) (*models.Banner, error) {
	banner.Base = s.newBase()
	if imagePayload != "" {
		url, err := s.uploader.UploadBase64(ctx, storage.PrefixBannerImage, imagePayload, "jpg")
		if err != nil {
			return nil, err
		}
		banner.ImageURL = url
	}
	if _, err := s.banners.InsertOne(ctx, banner); err != nil {
		return nil, apperror.Internal("Failed to create banner")
	}
	return &banner, nil
}

func (s *ContentService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	cursor, err := s.banners.Find(ctx,
		bson.M{"is_deleted": false, "is_active": true},
		options.Find().SetSort(bson.M{"position": 1}),
	)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch banners")
	}
	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, apperror.Internal("Failed to decode banners")
	}
	return banners, nil
}

func (s *ContentService) UpdateBanner(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.update(ctx, s.banners, id, fields, "Banner not found")
}

func (s *ContentService) DeleteBanner(ctx context.Context, id primitive.ObjectID) error {
	return s.softDelete(ctx, s.banners, id, "Banner not found")
}

func (s *ContentService) CreateFAQ(ctx context.Context, faq models.FAQ) (*models.FAQ, error) {
	faq.Base = s.newBase()
	if _, err := s.faqs.InsertOne(ctx, faq); err != nil {
		return nil, apperror.Internal("Failed to create FAQ")
	}
	return &faq, nil
}

func (s *ContentService) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	cursor, err := s.faqs.Find(ctx,
		bson.M{"is_deleted": false, "is_active": true},
		options.Find().SetSort(bson.M{"position": 1}),
	)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch FAQs")
	}
	var faqs []models.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, apperror.Internal("Failed to decode FAQs")
	}
	return faqs, nil
}

func (s *ContentService) UpdateFAQ(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.update(ctx, s.faqs, id, fields, "FAQ not found")
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id primitive.ObjectID) error {
	return s.softDelete(ctx, s.faqs, id, "FAQ not found")
}

func (s *ContentService) CreateIntro(ctx context.Context, intro models.Intro) (*models.Intro, error) {
	intro.Base = s.newBase()
	if _, err := s.intros.InsertOne(ctx, intro); err != nil {
		return nil, apperror.Internal("Failed to create intro")
	}
	return &intro, nil
}

func (s *ContentService) ListIntros(ctx context.Context) ([]models.Intro, error) {
	cursor, err := s.intros.Find(ctx,
		bson.M{"is_deleted": false, "is_active": true},
		options.Find().SetSort(bson.M{"position": 1}),
	)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch intros")
	}
	var intros []models.Intro
	if err := cursor.All(ctx, &intros); err != nil {
		return nil, apperror.Internal("Failed to decode intros")
	}
	return intros, nil
}

func (s *ContentService) UpdateIntro(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.update(ctx, s.intros, id, fields, "Intro not found")
}

func (s *ContentService) DeleteIntro(ctx context.Context, id primitive.ObjectID) error {
	return s.softDelete(ctx, s.intros, id, "Intro not found")
}

// SetConfiguration upserts the value for a key.
func (s *ContentService) SetConfiguration(ctx context.Context, key, value string) error {
	now := s.now()
	_, err := s.configurations.UpdateOne(ctx,
		bson.M{"key": key, "is_deleted": false},
		bson.M{
			"$set": bson.M{"value": value, "updated_at": now},
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID(),
				"unique_id":  utils.UniqueID(),
				"is_active":  true,
				"is_deleted": false,
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return apperror.Internal("Failed to save configuration")
	}
	return nil
}

func (s *ContentService) GetConfiguration(ctx context.Context, key string) (*models.Configuration, error) {
	var cfg models.Configuration
	err := s.configurations.FindOne(ctx, bson.M{"key": key, "is_deleted": false}).Decode(&cfg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Configuration not found")
		}
		return nil, apperror.Internal("Failed to fetch configuration")
	}
	return &cfg, nil
}

func (s *ContentService) update(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, fields bson.M, notFound string) error {
	fields["updated_at"] = s.now()
	res, err := col.UpdateOne(ctx, bson.M{"_id": id, "is_deleted": false}, bson.M{"$set": fields})
	if err != nil {
		return apperror.Internal("Failed to update record")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound(notFound)
	}
	return nil
}

func (s *ContentService) softDelete(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, notFound string) error {
	res, err := col.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "is_active": false, "updated_at": s.now()}},
	)
	if err != nil {
		return apperror.Internal("Failed to delete record")
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound(notFound)
	}
	return nil
}
