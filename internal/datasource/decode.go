package datasource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/pkg/logger"
)

// DecodeListings parses a listing array leniently. A body that is not a JSON
// array fails with a MalformedDataError. Inside the array, fields of the wrong
// shape are dropped and defaulted; elements that are not objects or carry no
// id are skipped.
func DecodeListings(body []byte) ([]models.Listing, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.NewMalformedDataError("listing response is not a JSON array", err)
	}

	listings := make([]models.Listing, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, item := range raw {
		l, err := decodeListing(item)
		if err != nil {
			logger.GlobalLogger.Errorf("Dropping malformed listing at index %d: %v", i, err)
			continue
		}
		if _, dup := seen[l.ID]; dup {
			logger.GlobalLogger.Errorf("Dropping duplicate listing id=%s at index %d", l.ID, i)
			continue
		}
		seen[l.ID] = struct{}{}
		listings = append(listings, l)
	}
	return listings, nil
}

func decodeListing(item json.RawMessage) (models.Listing, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return models.Listing{}, fmt.Errorf("element is not an object")
	}

	id, ok := decodeID(fields["id"])
	if !ok {
		return models.Listing{}, fmt.Errorf("missing or invalid id")
	}

	l := models.Listing{
		ID:          id,
		Title:       decodeString(fields["title"]),
		City:        decodeString(fields["city"]),
		Address:     decodeString(fields["address"]),
		Description: decodeString(fields["description"]),
		Value:       decodeMoney(fields["value"]),
		RentValue:   decodeMoney(fields["rentValue"]),
		Available:   decodeBool(fields["available"]),
		Photos:      decodePhotos(fields["photos"]),
		Company:     decodeCompany(fields["company"]),
	}
	if typ, ok := models.ParseListingType(decodeString(fields["type"])); ok {
		l.Type = typ
	}
	return l, nil
}

func decodeID(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// decodeMoney accepts numbers and numeric strings; anything else, or a negative amount, is zero
func decodeMoney(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 0
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		f = parsed
	}
	if f < 0 {
		return 0
	}
	return f
}

func decodeBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && parsed
	}
	return false
}

func decodePhotos(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []string{}
	}
	photos := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			photos = append(photos, s)
		}
	}
	return photos
}

func decodeCompany(raw json.RawMessage) *models.Company {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var c struct {
		Name json.RawMessage `json:"name"`
	}
	if json.Unmarshal(raw, &c) != nil {
		return nil
	}
	name := strings.TrimSpace(decodeString(c.Name))
	if name == "" {
		return nil
	}
	return &models.Company{Name: name}
}
