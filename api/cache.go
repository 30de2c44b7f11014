package api

import (
	"context"

	"github.com/elias19r/thread-cache/types"
)

/*
Cache defines the PUBLIC API of the scoped cache.
This is a contract that guarantees certain behaviors, without exposing
internals. All of the details (storage layout, expiry rules, version
matching, metrics) are hidden behind this interface.

A Cache instance belongs to ONE execution scope and must not be shared
between goroutines.
*/
type Cache interface {

	/*
		Write stores a value under key.

		BEHAVIOR:
		---------
		- Stamps the entry with the resolved version tag and TTL
		- Overwrites any previous entry for the key
		- With SkipNil set, a nil value is NOT stored

		Returns true when a value was actually stored.
	*/
	Write(key string, value any, opts *types.Options) bool

	/*
		Read retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		1. If the key exists, is NOT expired, and its version tag does
		   NOT conflict with the requested one:
		   - Return the value (cache hit)

		2. Otherwise:
		   - Delete the invalid entry if one was found (lazy expiry)
		   - Return nil, false

		There is no error path: a miss is a normal outcome.
	*/
	Read(key string, opts *types.Options) (any, bool)

	/*
		Exist reports whether key currently holds a valid entry.
		It shares Read's lazy-expiry side effect.
	*/
	Exist(key string, opts *types.Options) bool

	/*
		Fetch is Read with a fallback producer.

		BEHAVIOR:
		---------
		- On a valid hit, return the stored value
		- On a miss (or always, with Force set), invoke the producer,
		  write its result back, and return it
		- A producer error is passed through and nothing is written
	*/
	Fetch(ctx context.Context, key string, opts *types.Options, producer types.Producer) (any, error)

	/*
		Delete removes a key immediately.

		This operation is idempotent: removing a non-existing key is
		safe and returns false.
	*/
	Delete(key string) bool

	// DeleteMulti removes every given key and returns how many existed.
	DeleteMulti(keys ...string) int

	/*
		DeleteMatched removes every key matching the glob pattern
		('*' and '?' wildcards) and returns how many were removed.
	*/
	DeleteMatched(pattern string) int

	/*
		Cleanup sweeps all entries and deletes the ones that are invalid
		for the resolved version (expired, or version-mismatched against
		opts.Version). The deleted keys are returned.
	*/
	Cleanup(opts *types.Options) []string

	/*
		Increment adds amount to the integer stored at key and rewrites
		the entry with the same options.

		A missing, expired, mismatched, or non-integer prior value
		counts as zero. The new value is returned.
	*/
	Increment(key string, amount int64, opts *types.Options) int64

	// Decrement subtracts amount; otherwise identical to Increment.
	Decrement(key string, amount int64, opts *types.Options) int64

	/*
		Batch variants. MultiOptions supplies either one shared Options
		for all keys, a per-key mapping, or an ordered sequence aligned
		with the key order.
	*/
	WriteMulti(values map[string]any, opts *types.MultiOptions) int
	ReadMulti(opts *types.MultiOptions, keys ...string) map[string]any
	FetchMulti(ctx context.Context, opts *types.MultiOptions, producer types.Producer, keys ...string) (map[string]any, error)

	// Clear drops every entry and returns how many were removed.
	Clear() int

	// Len returns the number of stored entries, valid or not.
	Len() int

	// Keys returns every stored key in unspecified order.
	Keys() []string
}
