package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB dials MongoDB and verifies the connection with a ping.
// The initial connection is the only retried operation in the service:
// up to 5 attempts with a 2 second pause, after which the last client is
// returned anyway so the process can come up and fail per-request.
func ConnectDB(cfg Config) *mongo.Client {
	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= 5; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()
		if err == nil {
			log.Println("Connected to MongoDB")
			return client
		}
		log.Printf("MongoDB connection attempt %d failed: %v", attempt, err)
		time.Sleep(2 * time.Second)
	}
	log.Println("continuing without a verified MongoDB connection")
	return client
}

// GetCollection returns a collection handle in the configured database.
func GetCollection(client *mongo.Client, cfg Config, name string) *mongo.Collection {
	return client.Database(cfg.MongoName).Collection(name)
}
