package services

import (
	"context"
	"time"

	"homeinsight-catalog/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Search(ctx context.Context, term string, includeExclusive bool) ([]models.Listing, error) {
	args := m.Called(ctx, term, includeExclusive)
	listings, _ := args.Get(0).([]models.Listing)
	return listings, args.Error(1)
}

func (m *MockListingRepository) UpsertMany(ctx context.Context, listings []models.Listing) (int, error) {
	args := m.Called(ctx, listings)
	return args.Int(0), args.Error(1)
}

func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetSearchResult(ctx context.Context, key string) ([]models.Listing, bool, error) {
	args := m.Called(ctx, key)
	listings, _ := args.Get(0).([]models.Listing)
	return listings, args.Bool(1), args.Error(2)
}

func (m *MockListingCache) SetSearchResult(ctx context.Context, key string, listings []models.Listing, ttl time.Duration) error {
	return m.Called(ctx, key, listings, ttl).Error(0)
}

func (m *MockListingCache) InvalidateListing(ctx context.Context, listingID string) error {
	return m.Called(ctx, listingID).Error(0)
}

func (m *MockListingCache) InvalidateAllSearches(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}
