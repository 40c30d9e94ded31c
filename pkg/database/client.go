package database

import (
	"context"
	"fmt"
	"time"

	"homeinsight-catalog/pkg/config"
	"homeinsight-catalog/pkg/logger"
	"homeinsight-catalog/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ListingsCollection = "listings"
	UsersCollection    = "users"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// InitDB connects to MongoDB, selects the configured database and ensures
// the catalog indexes exist.
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to connect to MongoDB: %v", err)
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	start = time.Now()
	err = client.Ping(ctx, nil)
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		_ = client.Disconnect(ctx)
		logger.GlobalLogger.Errorf("failed to ping MongoDB: %v", err)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Database.DBName)

	if err := CreateIndexes(ctx, DB); err != nil {
		// searches still work without indexes, only slower
		logger.GlobalLogger.Errorf("Continuing without indexes: %v", err)
	}

	logger.GlobalLogger.Printf("MongoDB connected successfully: db=%s", cfg.Database.DBName)
	return nil
}

// Ping checks the MongoDB connection; used by the health endpoint.
func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return fmt.Errorf("MongoDB client not initialized")
	}
	return MongoClient.Ping(ctx, nil)
}

// close the MongoDB client connection.
func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := MongoClient.Disconnect(ctx)
	metrics.MongoOperationDuration.WithLabelValues("disconnect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("disconnect", "").Inc()
		logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		return
	}
	logger.GlobalLogger.Println("MongoDB connection closed")
}
