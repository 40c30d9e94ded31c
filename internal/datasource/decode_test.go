package datasource

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
)

func TestDecodeListingsFullRecord(t *testing.T) {
	body := []byte(`[{
		"id": "abc",
		"title": "Casa térrea",
		"city": "São Paulo",
		"address": "Rua Augusta, 100",
		"description": "Três quartos",
		"value": 850000,
		"rentValue": 4200.5,
		"type": "house",
		"available": true,
		"photos": ["front.jpg", "https://cdn.example.com/back.jpg"],
		"company": {"name": "Lopes"}
	}]`)

	got, err := DecodeListings(body)
	require.NoError(t, err)
	require.Len(t, got, 1)

	l := got[0]
	assert.Equal(t, "abc", l.ID)
	assert.Equal(t, "São Paulo", l.City)
	assert.Equal(t, 850000.0, l.Value)
	assert.Equal(t, 4200.5, l.RentValue)
	assert.Equal(t, models.ListingTypeHouse, l.Type)
	assert.True(t, l.Available)
	assert.Equal(t, []string{"front.jpg", "https://cdn.example.com/back.jpg"}, l.Photos)
	assert.Equal(t, "Lopes", l.CompanyName())
}

func TestDecodeListingsDropsBadFieldsNotRecords(t *testing.T) {
	body := []byte(`[{
		"id": 42,
		"title": 17,
		"value": "oops",
		"rentValue": -10,
		"type": "castle",
		"available": "yes",
		"photos": ["a.jpg", 3, null, "b.jpg"],
		"company": "Acme"
	}]`)

	got, err := DecodeListings(body)
	require.NoError(t, err)
	require.Len(t, got, 1)

	l := got[0]
	assert.Equal(t, "42", l.ID)
	assert.Empty(t, l.Title)
	assert.Zero(t, l.Value)
	assert.Zero(t, l.RentValue)
	assert.Empty(t, l.Type)
	assert.False(t, l.Available)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, l.Photos)
	assert.Nil(t, l.Company)
	assert.Equal(t, models.DefaultCompanyName, l.CompanyName())
}

func TestDecodeListingsSkipsUnusableElements(t *testing.T) {
	body := []byte(`[
		{"id": "1", "available": true},
		"just a string",
		{"title": "no id"},
		{"id": ""},
		{"id": "1", "title": "duplicate"},
		{"id": "2", "value": "1500.75", "available": "false"}
	]`)

	got, err := DecodeListings(body)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, 1500.75, got[1].Value)
	assert.False(t, got[1].Available)
}

func TestDecodeListingsMissingPhotosIsEmpty(t *testing.T) {
	got, err := DecodeListings([]byte(`[{"id":"x"}]`))
	require.NoError(t, err)
	assert.NotNil(t, got[0].Photos)
	assert.Empty(t, got[0].Photos)
}

func TestDecodeListingsRejectsNonArray(t *testing.T) {
	for _, body := range []string{`{}`, `"x"`, `not json`, ``} {
		_, err := DecodeListings([]byte(body))
		require.Error(t, err, body)
		assert.True(t, stderrors.Is(err, apperrors.ErrMalformedData), body)
	}
}

func TestDecodeListingsNullIsEmpty(t *testing.T) {
	got, err := DecodeListings([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, got)
}
