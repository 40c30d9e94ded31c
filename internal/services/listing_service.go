package services

import (
	"context"
	"time"

	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/repositories"
	"homeinsight-catalog/internal/validators"
	"homeinsight-catalog/pkg/cache"
	"homeinsight-catalog/pkg/logger"
	"homeinsight-catalog/pkg/metrics"
)

// DefaultSearchTTL applies when no cache TTL is configured.
const DefaultSearchTTL = time.Minute

type ListingService struct {
	repo      repositories.ListingRepository
	cache     repositories.ListingCache
	validator validators.ListingValidator
	ttl       time.Duration
}

func NewListingService(
	repo repositories.ListingRepository,
	cache repositories.ListingCache,
	validator validators.ListingValidator,
	ttl time.Duration,
) *ListingService {
	if ttl <= 0 {
		ttl = DefaultSearchTTL
	}
	return &ListingService{
		repo:      repo,
		cache:     cache,
		validator: validator,
		ttl:       ttl,
	}
}

// Search returns the listings visible in scope whose free-text fields
// contain term. cacheHit reports whether the result came from Redis.
// Cache failures are logged and the database is queried instead.
func (s *ListingService) Search(ctx context.Context, term string, scope cache.Scope) (listings []models.Listing, cacheHit bool, err error) {
	if err := s.validator.ValidateSearch(term); err != nil {
		return nil, false, err
	}

	normalized := cache.NormalizeTerm(term)
	cacheKey := cache.SearchKey(scope, normalized)

	if s.cache != nil {
		cached, found, err := s.cache.GetSearchResult(ctx, cacheKey)
		if err != nil {
			logger.GlobalLogger.Errorf("Cache read failed, falling back to database: key=%s, error=%v", cacheKey, err)
		} else if found {
			metrics.CacheHitsTotal.Inc()
			return cached, true, nil
		}
	}
	metrics.CacheMissesTotal.Inc()

	listings, err = s.repo.Search(ctx, normalized, scope == cache.ScopePrivileged)
	if err != nil {
		logger.GlobalLogger.Errorf("Listing search failed: scope=%s, search=%q, error=%v", scope, normalized, err)
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.SetSearchResult(ctx, cacheKey, listings, s.ttl); err != nil {
			logger.GlobalLogger.Errorf("Cache write failed: key=%s, error=%v", cacheKey, err)
		}
	}
	return listings, false, nil
}
