// internal/models/listing.go
package models

import "strings"

// DefaultCompanyName is shown when a listing carries no company.
const DefaultCompanyName = "Independent seller"

type ListingType string

const (
	ListingTypeHouse      ListingType = "HOUSE"
	ListingTypeApartment  ListingType = "APARTMENT"
	ListingTypeLand       ListingType = "LAND"
	ListingTypeCommercial ListingType = "COMMERCIAL"
)

// ParseListingType normalizes a raw type value; unknown values yield "" and false.
func ParseListingType(s string) (ListingType, bool) {
	switch t := ListingType(strings.ToUpper(strings.TrimSpace(s))); t {
	case ListingTypeHouse, ListingTypeApartment, ListingTypeLand, ListingTypeCommercial:
		return t, true
	default:
		return "", false
	}
}

type Company struct {
	Name string `json:"name" bson:"name"`
}

// Listing is a property record as served by the listing service.
// Photos keep display order. Exclusive is server-side only and decides
// whether the record appears on the public endpoint.
type Listing struct {
	ID          string      `json:"id" bson:"_id"`
	Title       string      `json:"title" bson:"title"`
	City        string      `json:"city" bson:"city"`
	Address     string      `json:"address" bson:"address"`
	Description string      `json:"description" bson:"description"`
	Value       float64     `json:"value" bson:"value"`
	RentValue   float64     `json:"rentValue" bson:"rentValue"`
	Type        ListingType `json:"type" bson:"type"`
	Available   bool        `json:"available" bson:"available"`
	Photos      []string    `json:"photos" bson:"photos"`
	Company     *Company    `json:"company,omitempty" bson:"company,omitempty"`
	Exclusive   bool        `json:"-" bson:"exclusive"`
}

// CompanyName returns the company name or the placeholder when absent.
func (l Listing) CompanyName() string {
	if l.Company == nil || strings.TrimSpace(l.Company.Name) == "" {
		return DefaultCompanyName
	}
	return l.Company.Name
}

// SearchableFields returns the free-text fields matched by search, in display order.
func (l Listing) SearchableFields() []string {
	return []string{l.Title, l.City, l.Address, l.Description}
}
