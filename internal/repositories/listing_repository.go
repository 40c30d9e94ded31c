package repositories

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/utils"
	"homeinsight-catalog/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(db *mongo.Database) ListingRepository {
	return &listingRepository{
		collection: db.Collection(database.ListingsCollection),
	}
}

// SearchFilter builds the query document for a search. A blank term matches
// every listing.
func SearchFilter(term string, includeExclusive bool) bson.M {
	filter := bson.M{}
	if !includeExclusive {
		filter["exclusive"] = bson.M{"$ne": true}
	}
	if strings.TrimSpace(term) == "" {
		return filter
	}

	pattern := regexp.QuoteMeta(term)
	fields := []string{"title", "city", "address", "description"}
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	filter["$or"] = or
	return filter
}

func (r *listingRepository) Search(ctx context.Context, term string, includeExclusive bool) ([]models.Listing, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, SearchFilter(term, includeExclusive), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	utils.ObserveMongo("find", database.ListingsCollection, start, err)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	start = time.Now()
	err = cursor.All(ctx, &listings)
	utils.ObserveMongo("cursor_all", database.ListingsCollection, start, err)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	return listings, nil
}

// UpsertMany replaces listings by id, inserting the ones that do not exist.
func (r *listingRepository) UpsertMany(ctx context.Context, listings []models.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	writes := make([]mongo.WriteModel, 0, len(listings))
	for _, l := range listings {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": l.ID}).
			SetReplacement(l).
			SetUpsert(true))
	}

	start := time.Now()
	result, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	utils.ObserveMongo("bulk_upsert", database.ListingsCollection, start, err)
	if err != nil {
		return 0, fmt.Errorf("database query failed: %v", err)
	}
	return int(result.UpsertedCount + result.MatchedCount), nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	utils.ObserveMongo("delete_one", database.ListingsCollection, start, err)
	if err != nil {
		return fmt.Errorf("database query failed: %v", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError("listing not found: " + id)
	}
	return nil
}
