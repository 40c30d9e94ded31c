package validators

import (
	"homeinsight-catalog/internal/models"
)

type ListingValidator interface {
	ValidateSearch(term string) error
	ValidateImport(listing *models.Listing) error
}

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(req *models.LoginRequest) error
}
