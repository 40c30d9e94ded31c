package repositories

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/utils"
	"homeinsight-catalog/pkg/cache"

	"github.com/go-redis/redis/v8"
)

// cachedListing keeps the server-only exclusive flag, which the public JSON
// form of a listing omits.
type cachedListing struct {
	models.Listing
	Exclusive bool `json:"exclusive"`
}

type listingCache struct {
	client *redis.Client
}

func NewListingCache(client *redis.Client) ListingCache {
	return &listingCache{client: client}
}

func (c *listingCache) GetSearchResult(ctx context.Context, key string) ([]models.Listing, bool, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Bytes()
	if cache.IsMiss(err) {
		utils.ObserveRedis("get_search_result", start, nil)
		return nil, false, nil
	}
	utils.ObserveRedis("get_search_result", start, err)
	if err != nil {
		return nil, false, cache.NewCacheError("get_search_result", err, true)
	}

	var cached []cachedListing
	if err := json.Unmarshal(data, &cached); err != nil {
		utils.ObserveRedis("get_search_unmarshal", start, err)
		return nil, false, cache.NewCacheError("get_search_unmarshal", err, false)
	}
	listings := make([]models.Listing, len(cached))
	for i, cl := range cached {
		listings[i] = cl.Listing
		listings[i].Exclusive = cl.Exclusive
	}
	return listings, true, nil
}

// SetSearchResult caches listings under key and indexes the key under every
// listing id so a change to any of them invalidates the entry.
func (c *listingCache) SetSearchResult(ctx context.Context, key string, listings []models.Listing, ttl time.Duration) error {
	start := time.Now()
	cached := make([]cachedListing, len(listings))
	for i, l := range listings {
		cached[i] = cachedListing{Listing: l, Exclusive: l.Exclusive}
	}
	data, err := json.Marshal(cached)
	if err != nil {
		utils.ObserveRedis("set_search_marshal", start, err)
		return cache.NewCacheError("set_search_marshal", err, false)
	}

	seconds := int(ttl.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	args := make([]interface{}, 0, len(listings)+3)
	args = append(args, key, string(data), strconv.Itoa(seconds))
	for _, l := range listings {
		args = append(args, l.ID)
	}

	err = cache.SetSearchResultScript.Run(ctx, c.client, []string{cache.SearchIndexKey}, args...).Err()
	utils.ObserveRedis("set_search_result", start, err)
	if err != nil {
		return cache.NewCacheError("set_search_result", err, true)
	}
	return nil
}

func (c *listingCache) InvalidateListing(ctx context.Context, listingID string) error {
	start := time.Now()
	err := cache.InvalidateListingScript.Run(ctx, c.client, []string{cache.SearchIndexKey}, listingID).Err()
	utils.ObserveRedis("invalidate_listing", start, err)
	if err != nil {
		return cache.NewCacheError("invalidate_listing", err, true)
	}
	return nil
}

func (c *listingCache) InvalidateAllSearches(ctx context.Context) error {
	start := time.Now()
	err := cache.InvalidateAllSearchesScript.Run(ctx, c.client, []string{cache.SearchIndexKey}).Err()
	utils.ObserveRedis("invalidate_all_searches", start, err)
	if err != nil {
		return cache.NewCacheError("invalidate_all_searches", err, true)
	}
	return nil
}
