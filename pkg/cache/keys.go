package cache

import (
	"fmt"
	"strings"
)

// Scope separates results served to signed-in users from public results,
// which never contain exclusive listings.
type Scope string

const (
	ScopePrivileged Scope = "privileged"
	ScopePublic     Scope = "public"
)

// SearchIndexKey is the set of every live search result key.
const SearchIndexKey = "listings:search:index"

// NormalizeTerm trims and lowercases a search term. Matching is
// case-insensitive, so " Casa" and "casa" share a cache entry.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// cache key for the listings matching a search term within a scope.
func SearchKey(scope Scope, term string) string {
	return fmt.Sprintf("listings:search:%s:%s", scope, NormalizeTerm(term))
}

// cache key for the set of search keys that contain a listing.
func ListingKeysSetKey(listingID string) string {
	return fmt.Sprintf("listing:keys:%s", listingID)
}
