package cache

import (
	"context"

	"github.com/tidwall/match"

	"github.com/elias19r/thread-cache/engine"
	"github.com/elias19r/thread-cache/expiration"
	"github.com/elias19r/thread-cache/store"
	"github.com/elias19r/thread-cache/types"
)

/*
Cache is the main implementation: one key-to-entry mapping owned by a
single execution scope.

This struct is the orchestrator that connects:
- the store (where entries live)
- the engine (expiry and version rules, metrics)
- per-call and default options

Because every scope owns its own Cache, there is no locking anywhere: a
Cache must NOT be shared between goroutines. Use the context helpers in
context.go to give each task its own instance.
*/
type Cache struct {
	// store holds the actual key → entry data for this scope.
	store store.Store

	// engine contains the "rules" of the cache: expiry, version
	// matching, metrics.
	engine *engine.Engine

	// defaults are merged under every per-call Options.
	defaults *types.Options
}

/*
New creates a Cache with the given engine and default options.
Both arguments may be nil: a nil engine gets the plain fixed-TTL behavior
with no metrics, and nil defaults mean "no version, no expiry, store nils".
*/
func New(eng *engine.Engine, defaults *types.Options) *Cache {
	if eng == nil {
		eng = engine.New(&expiration.ExpireAfterWrite{}, nil)
	}
	return &Cache{
		store:    store.NewMapStore(),
		engine:   eng,
		defaults: defaults,
	}
}

// resolve merges per-call options over the cache defaults.
func (c *Cache) resolve(opts *types.Options) types.Options {
	return types.Merge(opts, c.defaults)
}

/*
Write stores a value under key.

- The entry is stamped with the resolved Version and ExpiresIn
- A nil value is skipped entirely when SkipNil is set

Returns true when a value was actually stored.
*/
func (c *Cache) Write(key string, value any, opts *types.Options) bool {
	o := c.resolve(opts)

	if value == nil && o.SkipNil {
		return false
	}

	ent := &types.Entry{
		Key:       key,
		Value:     value,
		Version:   o.Version,
		ExpiresIn: o.ExpiresIn,
	}

	// Stamp timing metadata and record the write.
	c.engine.OnWrite(ent)

	c.store.Put(key, ent)
	return true
}

/*
Read retrieves the value for key.

An entry is returned only if it is present, not expired, and its version
tag does not conflict with the requested one. An invalid entry is deleted
as a side effect (lazy expiry), and nil/false is returned.
*/
func (c *Cache) Read(key string, opts *types.Options) (any, bool) {
	o := c.resolve(opts)

	ent, ok := c.store.Get(key)
	if !ok {
		c.engine.Metrics.Miss()
		return nil, false
	}

	if v := c.engine.Check(ent, o.Version); v != engine.Valid {
		// Lazy removal: invalid entries die on the next access,
		// not proactively.
		c.engine.ReportInvalid(v)
		c.store.Delete(key)
		return nil, false
	}

	c.engine.Metrics.Hit()
	return ent.Value, true
}

// Exist reports whether key holds a valid entry. It runs through the same
// lazy-expiry path as Read, so an invalid entry is removed here too.
func (c *Cache) Exist(key string, opts *types.Options) bool {
	_, ok := c.Read(key, opts)
	return ok
}

/*
Fetch reads key and, on a miss or invalid entry, computes a new value via
the producer and writes it back.

- With Force set, the stored entry is ignored and the producer always runs
- The produced value is written honoring SkipNil, but is returned to the
  caller either way
- A producer error is returned unchanged and nothing is written
*/
func (c *Cache) Fetch(ctx context.Context, key string, opts *types.Options, producer types.Producer) (any, error) {
	o := c.resolve(opts)

	if !o.Force {
		if v, ok := c.Read(key, opts); ok {
			return v, nil
		}
	}

	val, err := c.engine.Produce(ctx, key, producer)
	if err != nil {
		return nil, err
	}

	c.Write(key, val, opts)
	return val, nil
}

// Delete removes key immediately. Removing a non-existing key is safe.
func (c *Cache) Delete(key string) bool {
	deleted := c.store.Delete(key)
	if deleted {
		c.engine.Metrics.Delete()
	}
	return deleted
}

// DeleteMulti removes every given key and returns how many existed.
func (c *Cache) DeleteMulti(keys ...string) int {
	n := 0
	for _, key := range keys {
		if c.Delete(key) {
			n++
		}
	}
	return n
}

/*
DeleteMatched removes every key matching the glob pattern and returns how
many were removed. The pattern supports '*' and '?' wildcards matched
against the whole key string, e.g. "user:*" or "session:??".
*/
func (c *Cache) DeleteMatched(pattern string) int {
	var matched []string
	c.store.Range(func(key string, _ *types.Entry) bool {
		if match.Match(key, pattern) {
			matched = append(matched, key)
		}
		return true
	})
	return c.DeleteMulti(matched...)
}

/*
Cleanup sweeps the whole mapping and deletes every entry that is invalid
for the resolved version: expired entries always, plus entries whose
version tag conflicts with opts.Version. The deleted keys are returned.

This is the only proactive removal path; everything else is lazy.
*/
func (c *Cache) Cleanup(opts *types.Options) []string {
	o := c.resolve(opts)

	var invalid []string
	c.store.Range(func(key string, ent *types.Entry) bool {
		if v := c.engine.Check(ent, o.Version); v != engine.Valid {
			c.engine.ReportInvalid(v)
			invalid = append(invalid, key)
		}
		return true
	})

	// Mutate after the sweep; Range must not observe deletions.
	for _, key := range invalid {
		c.store.Delete(key)
	}
	return invalid
}

/*
Increment adds amount to the integer stored at key and rewrites the entry
with the same options. A missing, expired, mismatched, or non-integer
prior value counts as zero. The new value is returned.
*/
func (c *Cache) Increment(key string, amount int64, opts *types.Options) int64 {
	cur := int64(0)
	if v, ok := c.Read(key, opts); ok {
		cur = asInt64(v)
	}

	next := cur + amount
	c.Write(key, next, opts)
	return next
}

// Decrement subtracts amount from the integer stored at key.
func (c *Cache) Decrement(key string, amount int64, opts *types.Options) int64 {
	return c.Increment(key, -amount, opts)
}

/*
WriteMulti stores every key/value pair of values. Options resolve per key
through MultiOptions (Shared or PerKey; Ordered does not apply since a map
has no order). Returns how many values were actually stored, which can be
less than len(values) when SkipNil drops nils.
*/
func (c *Cache) WriteMulti(values map[string]any, opts *types.MultiOptions) int {
	n := 0
	for key, value := range values {
		if c.Write(key, value, opts.For(-1, key)) {
			n++
		}
	}
	return n
}

/*
ReadMulti reads every given key and returns the valid hits. Missing or
invalid keys are simply absent from the result; invalid entries are
removed lazily just like with Read. Options resolve per key, with Ordered
aligned to the order of keys.
*/
func (c *Cache) ReadMulti(opts *types.MultiOptions, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for i, key := range keys {
		if v, ok := c.Read(key, opts.For(i, key)); ok {
			out[key] = v
		}
	}
	return out
}

/*
FetchMulti fetches every given key, invoking the producer for each miss,
and returns a value for every key. The first producer error aborts the
batch. Options resolve per key, with Ordered aligned to the order of keys.
*/
func (c *Cache) FetchMulti(ctx context.Context, opts *types.MultiOptions, producer types.Producer, keys ...string) (map[string]any, error) {
	out := make(map[string]any, len(keys))
	for i, key := range keys {
		v, err := c.Fetch(ctx, key, opts.For(i, key), producer)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// Clear drops every entry and returns how many were removed.
func (c *Cache) Clear() int {
	return c.DeleteMulti(c.store.Keys()...)
}

// Len returns the number of stored entries, valid or not.
func (c *Cache) Len() int {
	return c.store.Len()
}

// Keys returns every stored key in unspecified order.
func (c *Cache) Keys() []string {
	return c.store.Keys()
}

// asInt64 coerces a stored value to an integer for Increment/Decrement.
// Anything that is not an integer counts as zero.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	default:
		return 0
	}
}
