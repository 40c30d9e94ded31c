package cache

import (
	"github.com/go-redis/redis/v8"
)

var (
	// ARGV: search key, results JSON, ttl seconds, listing ids...
	// Stores the results and records the search key under each listing and
	// in the search index so either can invalidate it later.
	SetSearchResultScript = redis.NewScript(`
		local search_key = ARGV[1]
		local ttl = tonumber(ARGV[3])
		redis.call('SET', search_key, ARGV[2], 'EX', ttl)
		redis.call('SADD', KEYS[1], search_key)
		for i = 4, #ARGV do
			local set_key = 'listing:keys:' .. ARGV[i]
			redis.call('SADD', set_key, search_key)
			redis.call('EXPIRE', set_key, ttl)
		end
		return 1
	`)

	// ARGV: listing id. Drops every cached search that contained the listing.
	InvalidateListingScript = redis.NewScript(`
		local set_key = 'listing:keys:' .. ARGV[1]
		local cache_keys = redis.call('SMEMBERS', set_key)
		for _, key in ipairs(cache_keys) do
			redis.call('DEL', key)
			redis.call('SREM', KEYS[1], key)
		end
		redis.call('DEL', set_key)
		return #cache_keys
	`)

	// Drops every cached search and empties the index.
	InvalidateAllSearchesScript = redis.NewScript(`
		local cache_keys = redis.call('SMEMBERS', KEYS[1])
		for _, key in ipairs(cache_keys) do
			redis.call('DEL', key)
		end
		redis.call('DEL', KEYS[1])
		return #cache_keys
	`)
)
