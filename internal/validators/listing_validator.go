package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
)

// MaxSearchLength bounds the search term accepted by the listing endpoints.
const MaxSearchLength = 200

type listingValidator struct{}

func NewListingValidator() ListingValidator {
	return &listingValidator{}
}

// ValidateSearch accepts any valid UTF-8 term up to MaxSearchLength characters,
// including the empty term.
func (v *listingValidator) ValidateSearch(term string) error {
	if !utf8.ValidString(term) {
		return apperrors.NewInvalidParametersError("search term must be valid UTF-8")
	}
	if utf8.RuneCountInString(term) > MaxSearchLength {
		return apperrors.NewInvalidParametersError(fmt.Sprintf("search term exceeds %d characters", MaxSearchLength))
	}
	return nil
}

func (v *listingValidator) ValidateImport(listing *models.Listing) error {
	if strings.TrimSpace(listing.ID) == "" {
		return apperrors.NewInvalidParametersError("listing id is required")
	}
	if strings.TrimSpace(listing.Title) == "" {
		return apperrors.NewInvalidParametersError(fmt.Sprintf("listing %s: title is required", listing.ID))
	}
	if listing.Value < 0 || listing.RentValue < 0 {
		return apperrors.NewInvalidParametersError(fmt.Sprintf("listing %s: amounts must be non-negative", listing.ID))
	}
	return nil
}
