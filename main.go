package main

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pixeldesignindia/organic-api/configs"
	cartController "github.com/pixeldesignindia/organic-api/controllers/cart"
	categoryController "github.com/pixeldesignindia/organic-api/controllers/categories"
	contentController "github.com/pixeldesignindia/organic-api/controllers/content"
	couponController "github.com/pixeldesignindia/organic-api/controllers/coupons"
	orderController "github.com/pixeldesignindia/organic-api/controllers/orders"
	paymentController "github.com/pixeldesignindia/organic-api/controllers/payments"
	productController "github.com/pixeldesignindia/organic-api/controllers/products"
	roleController "github.com/pixeldesignindia/organic-api/controllers/roles"
	statisticsController "github.com/pixeldesignindia/organic-api/controllers/statistics"
	userController "github.com/pixeldesignindia/organic-api/controllers/users"
	vendorController "github.com/pixeldesignindia/organic-api/controllers/vendors"
	wishlistController "github.com/pixeldesignindia/organic-api/controllers/wishlist"
	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/payments"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/routes"
	"github.com/pixeldesignindia/organic-api/services"
	"github.com/pixeldesignindia/organic-api/storage"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := configs.ConnectDB(cfg)
	db := client.Database(cfg.MongoName)

	uploader, err := storage.NewUploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	validate := validator.New()

	razorpay := payments.Razorpay{KeyID: cfg.RazorpayKeyID, KeySecret: cfg.RazorpayKeySecret}
	payu := payments.PayU{Key: cfg.PayUKey, Salt: cfg.PayUSalt}
	phonepe := payments.PhonePe{
		Host:       cfg.PhonePeHost,
		MerchantID: cfg.PhonePeMerchantID,
		APIKey:     cfg.PhonePeAPIKey,
		KeyIndex:   cfg.PhonePeKeyIndex,
	}

	userSvc := services.NewUserService(db, uploader, cfg)
	productSvc := services.NewProductService(db, uploader)
	categorySvc := services.NewCategoryService(db)
	cartSvc := services.NewCartService(db, productSvc)
	wishlistSvc := services.NewWishlistService(db)
	orderSvc := services.NewOrderService(client, db, productSvc, userSvc)
	paymentSvc := services.NewPaymentService(db, orderSvc, payu)
	vendorSvc := services.NewVendorService(db, userSvc)
	roleSvc := services.NewRoleService(db)
	couponSvc := services.NewCouponService(db)
	statisticsSvc := services.NewStatisticsService(db)
	contentSvc := services.NewContentService(db, uploader)

	app := fiber.New(fiber.Config{AppName: cfg.AppName})
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))

	api := app.Group("/api/v1", middlewares.Auth(cfg.JWTSecret))
	api.Get("/status", func(c *fiber.Ctx) error {
		return responses.Ok(c, "OK", &fiber.Map{"app": cfg.AppName})
	})

	routes.UserRoutes(api, userController.NewController(userSvc, validate))
	routes.ProductRoutes(api, productController.NewController(productSvc, validate))
	routes.CategoryRoutes(api, categoryController.NewController(categorySvc, validate))
	routes.CartRoutes(api, cartController.NewController(cartSvc, validate))
	routes.WishlistRoutes(api, wishlistController.NewController(wishlistSvc))
	routes.OrderRoutes(api, orderController.NewController(orderSvc, validate))
	routes.PaymentRoutes(api, paymentController.NewController(paymentSvc, orderSvc, cartSvc, razorpay, payu, phonepe, validate))
	routes.VendorRoutes(api, vendorController.NewController(vendorSvc, validate))
	routes.RoleRoutes(api, roleController.NewController(roleSvc, validate))
	routes.CouponRoutes(api, couponController.NewController(couponSvc, validate))
	routes.StatisticsRoutes(api, statisticsController.NewController(statisticsSvc))
	routes.ContentRoutes(api, contentController.NewController(contentSvc, validate))

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
