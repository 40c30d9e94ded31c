package database

import (
	"context"
	"fmt"
	"time"

	"homeinsight-catalog/pkg/logger"
	"homeinsight-catalog/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingIndexes backs the public scope filter. Free-text fields are
// matched by regex and are not indexed.
func ListingIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "exclusive", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "available", Value: 1}}},
	}
}

// UserIndexes enforces one account per email.
func UserIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}

// CreateIndexes creates the listing and user indexes.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range map[string][]mongo.IndexModel{
		ListingsCollection: ListingIndexes(),
		UsersCollection:    UserIndexes(),
	} {
		start := time.Now()
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		metrics.MongoOperationDuration.WithLabelValues("create_indexes", collection).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("create_indexes", collection).Inc()
			return fmt.Errorf("failed to create %s indexes: %v", collection, err)
		}
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
