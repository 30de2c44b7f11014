package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	cache "github.com/elias19r/thread-cache"
	"github.com/elias19r/thread-cache/engine"
	"github.com/elias19r/thread-cache/expiration"
	"github.com/elias19r/thread-cache/types"
	"github.com/elias19r/thread-cache/version"
)

// ================= METRICS =================

// Metrics counts lifecycle events for the demo summary. No locking: the
// demo cache lives on one goroutine, like every scope should.
type Metrics struct {
	hits, misses, expired, mismatched, writes, deletes int
}

func (m *Metrics) Hit()      { m.hits++ }
func (m *Metrics) Miss()     { m.misses++ }
func (m *Metrics) Expire()   { m.expired++ }
func (m *Metrics) Mismatch() { m.mismatched++ }
func (m *Metrics) Write()    { m.writes++ }
func (m *Metrics) Delete()   { m.deletes++ }

// ================= MAIN =================

func main() {
	ctx := context.Background()

	log.Info("system boot",
		"ttl strategy", "ExpireAfterWrite",
		"default ttl", "2s",
	)

	// ---------------- Cache ----------------
	metrics := &Metrics{}
	eng := engine.New(
		&expiration.ExpireAfterWrite{DefaultTTL: 2 * time.Second},
		metrics,
	)
	c := cache.New(eng, nil)

	// The cache travels with the context; downstream code picks it up
	// by namespace instead of threading the pointer through every call.
	ctx = cache.NewContext(ctx, c)
	c, _ = cache.FromContext(ctx)

	// ---------------- 1) miss then hit ----------------
	v, ok := c.Read("a", nil)
	log.Info("read before write", "key", "a", "value", v, "ok", ok)

	c.Write("a", "alpha", nil)
	v, _ = c.Read("a", nil)
	log.Info("read after write", "key", "a", "value", v)

	// ---------------- 2) fetch ----------------
	v, _ = c.Fetch(ctx, "b", nil, func(ctx context.Context, key string) (any, error) {
		log.Info("producer invoked", "key", key)
		return "beta", nil
	})
	log.Info("fetch", "key", "b", "value", v)

	v, _ = c.Fetch(ctx, "b", nil, func(ctx context.Context, key string) (any, error) {
		log.Error("producer should not run on a hit", "key", key)
		return nil, nil
	})
	log.Info("fetch again (cached)", "key", "b", "value", v)

	// ---------------- 3) TTL expiration ----------------
	c.Write("x", "temp-value", &types.Options{ExpiresIn: time.Second})
	log.Info("write with ttl", "key", "x", "ttl", "1s")

	time.Sleep(1200 * time.Millisecond)

	v, ok = c.Read("x", nil)
	log.Info("read after ttl", "key", "x", "value", v, "ok", ok)

	// ---------------- 4) versioning ----------------
	v1 := version.New()
	v2 := version.New()

	c.Write("user:1", "cached profile", &types.Options{Version: v1})
	_, ok = c.Read("user:1", &types.Options{Version: v2})
	log.Info("read with new version", "key", "user:1", "ok", ok)

	// ---------------- 5) counters ----------------
	for i := 0; i < 5; i++ {
		c.Increment("visits", 1, nil)
	}
	n := c.Decrement("visits", 2, nil)
	log.Info("counter", "key", "visits", "value", n)

	// ---------------- 6) delete matched ----------------
	c.WriteMulti(map[string]any{
		"session:1": "s1",
		"session:2": "s2",
		"config":    "c",
	}, nil)
	removed := c.DeleteMatched("session:*")
	log.Info("delete matched", "pattern", "session:*", "removed", removed)

	// ---------------- 7) cleanup ----------------
	keys := c.Cleanup(&types.Options{Version: v2})
	log.Info("cleanup", "removed keys", keys)

	// ---------------- summary ----------------
	log.Info("metrics",
		"hits", metrics.hits,
		"misses", metrics.misses,
		"expired", metrics.expired,
		"mismatched", metrics.mismatched,
		"writes", metrics.writes,
		"deletes", metrics.deletes,
	)
	log.Info("remaining entries", "len", c.Len(), "keys", c.Keys())
}
