package repositories

import (
	"context"
	"time"

	"homeinsight-catalog/internal/models"
)

// ListingRepository reads and writes listings in MongoDB.
type ListingRepository interface {
	// Search returns listings whose title, city, address or description
	// contain term (case-insensitive), ordered by id. Exclusive listings
	// are left out unless includeExclusive is set.
	Search(ctx context.Context, term string, includeExclusive bool) ([]models.Listing, error)
	UpsertMany(ctx context.Context, listings []models.Listing) (int, error)
	// Delete removes a listing; a missing id yields a NOT_FOUND AppError.
	Delete(ctx context.Context, id string) error
}

// ListingCache stores search results in Redis.
type ListingCache interface {
	// GetSearchResult returns the cached listings for key; found is false on a miss.
	GetSearchResult(ctx context.Context, key string) (listings []models.Listing, found bool, err error)
	SetSearchResult(ctx context.Context, key string, listings []models.Listing, ttl time.Duration) error
	InvalidateListing(ctx context.Context, listingID string) error
	InvalidateAllSearches(ctx context.Context) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

