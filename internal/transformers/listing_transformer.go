package transformers

import (
	"strings"

	"homeinsight-catalog/internal/models"
)

type listingTransformer struct{}

func NewListingTransformer() ListingTransformer {
	return &listingTransformer{}
}

// Normalize cleans a listing before it is stored: whitespace in the
// searchable fields is collapsed, blank photo references and empty
// companies are dropped and unknown types are cleared.
func (t *listingTransformer) Normalize(l *models.Listing) {
	l.ID = strings.TrimSpace(l.ID)
	l.Title = collapseSpaces(l.Title)
	l.City = collapseSpaces(l.City)
	l.Address = collapseSpaces(l.Address)
	l.Description = strings.TrimSpace(l.Description)

	if typ, ok := models.ParseListingType(string(l.Type)); ok {
		l.Type = typ
	} else {
		l.Type = ""
	}

	photos := make([]string, 0, len(l.Photos))
	for _, p := range l.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	l.Photos = photos

	if l.Company != nil {
		name := collapseSpaces(l.Company.Name)
		if name == "" {
			l.Company = nil
		} else {
			l.Company = &models.Company{Name: name}
		}
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
