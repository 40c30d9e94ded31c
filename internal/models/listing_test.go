package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingType(t *testing.T) {
	typ, ok := ParseListingType(" apartment ")
	assert.True(t, ok)
	assert.Equal(t, ListingTypeApartment, typ)

	typ, ok = ParseListingType("castle")
	assert.False(t, ok)
	assert.Empty(t, typ)
}

func TestCompanyNameFallsBackToPlaceholder(t *testing.T) {
	assert.Equal(t, DefaultCompanyName, Listing{}.CompanyName())
	assert.Equal(t, DefaultCompanyName, Listing{Company: &Company{Name: "  "}}.CompanyName())
	assert.Equal(t, "Lopes Imóveis", Listing{Company: &Company{Name: "Lopes Imóveis"}}.CompanyName())
}

func TestExclusiveNeverSerialized(t *testing.T) {
	data, err := json.Marshal(Listing{ID: "1", Exclusive: true})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "xclusive")
}
