package transformers

import (
	"homeinsight-catalog/internal/models"
)

type ListingTransformer interface {
	Normalize(listing *models.Listing)
}
