package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/repositories"
	"homeinsight-catalog/internal/transformers"
	"homeinsight-catalog/internal/validators"
	"homeinsight-catalog/pkg/logger"
)

// ImportListing is a listing as submitted for import. Unlike the public
// form it carries the exclusive flag.
type ImportListing struct {
	models.Listing
	Exclusive bool `json:"exclusive"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Rejected []string `json:"rejected"`
}

// ImportService loads listings into the catalog and keeps the search cache
// consistent with the change.
type ImportService struct {
	repo      repositories.ListingRepository
	cache     repositories.ListingCache
	trans     transformers.ListingTransformer
	validator validators.ListingValidator
}

func NewImportService(
	repo repositories.ListingRepository,
	cache repositories.ListingCache,
	trans transformers.ListingTransformer,
	validator validators.ListingValidator,
) *ImportService {
	return &ImportService{
		repo:      repo,
		cache:     cache,
		trans:     trans,
		validator: validator,
	}
}

// Import normalizes and validates each record, upserts the valid ones and
// drops every cached search. Invalid records are reported, not fatal.
func (s *ImportService) Import(ctx context.Context, records []ImportListing) (*ImportResult, error) {
	result := &ImportResult{Rejected: []string{}}
	valid := make([]models.Listing, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		l := rec.Listing
		l.Exclusive = rec.Exclusive
		s.trans.Normalize(&l)
		if err := s.validator.ValidateImport(&l); err != nil {
			result.Rejected = append(result.Rejected, fmt.Sprintf("record %d: %s", i, userMessage(err)))
			continue
		}
		// a repeated id replaces the earlier record
		if j, dup := seen[l.ID]; dup {
			valid[j] = l
			continue
		}
		seen[l.ID] = len(valid)
		valid = append(valid, l)
	}

	if len(valid) > 0 {
		n, err := s.repo.UpsertMany(ctx, valid)
		if err != nil {
			logger.GlobalLogger.Errorf("Listing import failed: records=%d, error=%v", len(valid), err)
			return nil, err
		}
		result.Imported = n
		s.invalidateAll(ctx)
	}

	logger.GlobalLogger.Printf("Listing import finished: imported=%d, rejected=%d", result.Imported, len(result.Rejected))
	return result, nil
}

// Delete removes a listing and the cached searches that contained it.
func (s *ImportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateListing(ctx, id); err != nil {
			logger.GlobalLogger.Errorf("Cache invalidation failed: listing=%s, error=%v", id, err)
		}
	}
	logger.GlobalLogger.Printf("Listing deleted: id=%s", id)
	return nil
}

func (s *ImportService) invalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAllSearches(ctx); err != nil {
		logger.GlobalLogger.Errorf("Cache invalidation failed after import: %v", err)
	}
}

func userMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.UserMessage != "" {
		return appErr.UserMessage
	}
	return err.Error()
}
