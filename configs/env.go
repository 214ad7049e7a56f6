package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// loaded once in main and handed to constructors.
type Config struct {
	AppName    string
	ServerPort string

	MongoURI  string
	MongoName string

	JWTSecret        string
	JWTExpiry        time.Duration
	RefreshSecret    string
	RefreshExpiry    time.Duration
	ResetTokenExpiry time.Duration

	AWSRegion string
	S3Bucket  string

	RazorpayKeyID     string
	RazorpayKeySecret string

	PayUKey  string
	PayUSalt string

	PhonePeHost       string
	PhonePeMerchantID string
	PhonePeAPIKey     string
	PhonePeKeyIndex   string
}

// Load reads .env (if present) and the process environment. A missing
// required variable aborts startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:    os.Getenv("APP_NAME"),
		ServerPort: os.Getenv("SERVER_PORT"),
		MongoURI:   os.Getenv("MONGO_URI"),
		MongoName:  getenv("MONGO_DB_NAME", "organicApi"),

		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiry:        hours("JWT_EXPIRY_HOURS", 24),
		RefreshSecret:    getenv("JWT_REFRESH_SECRET", os.Getenv("JWT_SECRET")),
		RefreshExpiry:    hours("JWT_REFRESH_EXPIRY_HOURS", 720),
		ResetTokenExpiry: hours("RESET_TOKEN_EXPIRY_HOURS", 1),

		AWSRegion: getenv("AWS_REGION", "ap-south-1"),
		S3Bucket:  os.Getenv("AWS_S3_BUCKET"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		PayUKey:  os.Getenv("PAYU_KEY"),
		PayUSalt: os.Getenv("PAYU_SALT"),

		PhonePeHost:       os.Getenv("PHONEPE_HOST"),
		PhonePeMerchantID: os.Getenv("PHONEPE_MERCHANT_ID"),
		PhonePeAPIKey:     os.Getenv("PHONEPE_API_KEY"),
		PhonePeKeyIndex:   getenv("PHONEPE_KEY_INDEX", "1"),
	}

	required := map[string]string{
		"APP_NAME":    cfg.AppName,
		"SERVER_PORT": cfg.ServerPort,
		"MONGO_URI":   cfg.MongoURI,
		"JWT_SECRET":  cfg.JWTSecret,
	}
	for name, v := range required {
		if v == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", name)
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func hours(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Hour
		}
	}
	return time.Duration(fallback) * time.Hour
}
