package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
)

// StatisticsService runs the dashboard aggregation pipelines.
type StatisticsService struct {
	orders   *mongo.Collection
	products *mongo.Collection
	users    *mongo.Collection
}

func NewStatisticsService(db *mongo.Database) *StatisticsService {
	return &StatisticsService{
		orders:   db.Collection("orders"),
		products: db.Collection("products"),
		users:    db.Collection("users"),
	}
}

type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// OrderStatusCounts groups live orders by status.
func (s *StatisticsService) OrderStatusCounts(ctx context.Context) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_deleted": false}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Internal("Failed to aggregate order statuses")
	}
	var out []StatusCount
	if err := cursor.All(ctx, &out); err != nil {
		return nil, apperror.Internal("Failed to decode order statuses")
	}
	return out, nil
}

type RevenueSummary struct {
	TotalRevenue   float64 `bson:"totalRevenue" json:"totalRevenue"`
	TotalTax       float64 `bson:"totalTax" json:"totalTax"`
	TotalShipping  float64 `bson:"totalShipping" json:"totalShipping"`
	DeliveredCount int64   `bson:"deliveredCount" json:"deliveredCount"`
}

// Revenue sums delivered-order totals.
func (s *StatisticsService) Revenue(ctx context.Context) (*RevenueSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"is_deleted": false,
			"status":     models.OrderStatusDelivered,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalRevenue":   bson.M{"$sum": "$totalPrice"},
			"totalTax":       bson.M{"$sum": "$tax"},
			"totalShipping":  bson.M{"$sum": "$shippingCharge"},
			"deliveredCount": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Internal("Failed to aggregate revenue")
	}
	var out []RevenueSummary
	if err := cursor.All(ctx, &out); err != nil {
		return nil, apperror.Internal("Failed to decode revenue")
	}
	if len(out) == 0 {
		return &RevenueSummary{}, nil
	}
	return &out[0], nil
}

type MonthlySales struct {
	Month   string  `bson:"_id" json:"month"`
	Orders  int64   `bson:"orders" json:"orders"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// MonthlySales buckets orders into YYYY-MM groups.
func (s *StatisticsService) MonthlySales(ctx context.Context) ([]MonthlySales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_deleted": false}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$created_at",
			}},
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalPrice"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Internal("Failed to aggregate monthly sales")
	}
	var out []MonthlySales
	if err := cursor.All(ctx, &out); err != nil {
		return nil, apperror.Internal("Failed to decode monthly sales")
	}
	return out, nil
}

type TopProduct struct {
	ProductID primitive.ObjectID `bson:"_id" json:"productId"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
	Revenue   float64            `bson:"revenue" json:"revenue"`
}

// TopProducts unwinds order lines and ranks products by units sold.
func (s *StatisticsService) TopProducts(ctx context.Context, limit int64) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_deleted": false}}},
		{{Key: "$unwind", Value: "$cart"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$cart.productId",
			"quantity": bson.M{"$sum": "$cart.quantity"},
			"revenue": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$cart.quantity", "$cart.discountPrice"},
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"quantity": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Internal("Failed to aggregate top products")
	}
	var out []TopProduct
	if err := cursor.All(ctx, &out); err != nil {
		return nil, apperror.Internal("Failed to decode top products")
	}
	return out, nil
}

type VendorDashboard struct {
	Orders      int64   `bson:"orders" json:"orders"`
	UnitsSold   int64   `bson:"unitsSold" json:"unitsSold"`
	GrossSales  float64 `bson:"grossSales" json:"grossSales"`
	Commission  float64 `bson:"commission" json:"commission"`
	ProductsLive int64  `json:"productsLive"`
}

// VendorDashboard aggregates one seller's order lines.
func (s *StatisticsService) VendorDashboard(ctx context.Context, sellerID primitive.ObjectID) (*VendorDashboard, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_deleted": false}}},
		{{Key: "$unwind", Value: "$cart"}},
		{{Key: "$match", Value: bson.M{"cart.user_id": sellerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"orders":    bson.M{"$sum": 1},
			"unitsSold": bson.M{"$sum": "$cart.quantity"},
			"grossSales": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$cart.quantity", "$cart.discountPrice"},
			}},
			"commission": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$cart.quantity", "$cart.productCommissionAmount"},
			}},
		}}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Internal("Failed to aggregate vendor dashboard")
	}
	var out []VendorDashboard
	if err := cursor.All(ctx, &out); err != nil {
		return nil, apperror.Internal("Failed to decode vendor dashboard")
	}

	dashboard := VendorDashboard{}
	if len(out) > 0 {
		dashboard = out[0]
	}

	live, err := s.products.CountDocuments(ctx, bson.M{
		"user_id":    sellerID,
		"is_deleted": false,
		"is_active":  true,
	})
	if err != nil {
		return nil, apperror.Internal("Failed to count vendor products")
	}
	dashboard.ProductsLive = live
	return &dashboard, nil
}

type Overview struct {
	Users    int64 `json:"users"`
	Vendors  int64 `json:"vendors"`
	Products int64 `json:"products"`
	Orders   int64 `json:"orders"`
}

// Overview returns the headline counts for the admin dashboard.
func (s *StatisticsService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.users.CountDocuments(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, apperror.Internal("Failed to count users")
	}
	vendors, err := s.users.CountDocuments(ctx, bson.M{"is_deleted": false, "user_type": models.UserTypeVendor})
	if err != nil {
		return nil, apperror.Internal("Failed to count vendors")
	}
	products, err := s.products.CountDocuments(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, apperror.Internal("Failed to count products")
	}
	orders, err := s.orders.CountDocuments(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, apperror.Internal("Failed to count orders")
	}
	return &Overview{Users: users, Vendors: vendors, Products: products, Orders: orders}, nil
}
