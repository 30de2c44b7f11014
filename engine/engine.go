package engine

import (
	"context"
	"time"

	"github.com/elias19r/thread-cache/expiration"
	"github.com/elias19r/thread-cache/types"
	"github.com/elias19r/thread-cache/version"
)

/*
Engine is the "brain" of the cache. It is responsible for the behavior of
the cache, NOT storage. This acts as the policy layer.

It decides:
- When an entry is expired
- When an entry's version tag conflicts with a request
- How values are produced on a fetch miss
- How metrics are recorded

It does NOT:
- Store data
- Decide scoping
*/
type Engine struct {

	// Expiration controls when a cache entry should be considered too old.
	// If this is nil, entries never expire based on time.
	Expiration expiration.Strategy

	// Metrics is how we keep track of what the cache is doing.
	// Hits, misses, expirations, mismatches, writes, deletes.
	Metrics types.Metrics
}

// Verdict says why an entry failed validation, so callers can report the
// right metric and tests can assert on the reason.
type Verdict int

const (
	Valid Verdict = iota
	Expired
	Mismatched
)

// New creates an Engine.
func New(exp expiration.Strategy, metrics types.Metrics) *Engine {

	// Ensure metrics is always non-nil.
	// This avoids defensive nil checks throughout the codebase.
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	return &Engine{
		Expiration: exp,
		Metrics:    metrics,
	}
}

/*
Check validates an entry against the requested version.

Expiry is checked first: an entry that is both expired and mismatched
counts as expired. The caller is responsible for actually removing the
entry; the engine only judges it.
*/
func (e *Engine) Check(ent *types.Entry, requested string) Verdict {
	if e.Expiration != nil && e.Expiration.IsExpired(ent, time.Now()) {
		return Expired
	}
	if version.Mismatch(ent.Version, requested) {
		return Mismatched
	}
	return Valid
}

// ReportInvalid records the metric matching a non-Valid verdict.
func (e *Engine) ReportInvalid(v Verdict) {
	switch v {
	case Expired:
		e.Metrics.Expire()
	case Mismatched:
		e.Metrics.Mismatch()
	}
}

/*
OnWrite is called whenever an entry is written to the cache.
The expiration strategy stamps the entry's timing metadata here.
*/
func (e *Engine) OnWrite(ent *types.Entry) {
	if e.Expiration != nil {
		e.Expiration.OnWrite(ent, time.Now())
	}
	e.Metrics.Write()
}

/*
Produce is used when the cache does NOT have a valid value for a key and a
fetch has to compute one. This usually means a database call or a network
request, so it takes the caller's context.
*/
func (e *Engine) Produce(ctx context.Context, key string, producer types.Producer) (any, error) {
	return producer(ctx, key)
}
