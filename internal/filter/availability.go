// Package filter applies the availability selector to fetched listings.
package filter

import (
	"fmt"
	"strings"

	"homeinsight-catalog/internal/models"
)

// Availability is the tri-state availability selector.
type Availability int

const (
	All Availability = iota
	Available
	Unavailable
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return "all"
	}
}

// Next cycles All -> Available -> Unavailable -> All.
func (a Availability) Next() Availability {
	switch a {
	case All:
		return Available
	case Available:
		return Unavailable
	default:
		return All
	}
}

// ParseAvailability accepts "all", "available" or "unavailable" (case-insensitive).
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "available":
		return Available, nil
	case "unavailable":
		return Unavailable, nil
	default:
		return All, fmt.Errorf("unknown availability filter %q", s)
	}
}

// Apply returns the records selected by mode. All returns records as is;
// the other modes return a new slice and never touch the input.
func Apply(records []models.Listing, mode Availability) []models.Listing {
	if mode != Available && mode != Unavailable {
		return records
	}
	want := mode == Available
	out := make([]models.Listing, 0, len(records))
	for _, r := range records {
		if r.Available == want {
			out = append(out, r)
		}
	}
	return out
}
