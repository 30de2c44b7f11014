package types

import "time"

/*
Options controls a single cache operation.

Every operation accepts a *Options. A nil pointer means "use the cache
defaults", and any zero field falls back to the corresponding default as
well. This keeps call sites short for the common case:

	c.Write("user:1", u, nil)
	c.Read("user:1", &types.Options{Version: "v2"})
*/
type Options struct {

	// Version is the opaque tag to stamp on writes and to check on reads.
	// A read mismatches only when BOTH the stored and the requested
	// version are non-empty and unequal.
	Version string

	// ExpiresIn is the time-to-live applied on writes.
	// Zero falls back to the cache default; a cache default of zero
	// means entries never expire.
	ExpiresIn time.Duration

	// SkipNil makes Write (and the write half of Fetch) a no-op when the
	// value is nil. Useful when a producer may legitimately come back
	// empty and caching the emptiness is not wanted.
	SkipNil bool

	// Force makes Fetch ignore any stored entry and always invoke the
	// producer. Read/Write ignore it.
	Force bool
}

// Merge fills the zero fields of o from def and returns the result.
// Both arguments may be nil. The receiver-less shape keeps Options a plain
// value that callers can build literally.
func Merge(o, def *Options) Options {
	var out Options
	if def != nil {
		out = *def
	}
	if o == nil {
		return out
	}
	if o.Version != "" {
		out.Version = o.Version
	}
	if o.ExpiresIn != 0 {
		out.ExpiresIn = o.ExpiresIn
	}
	if o.SkipNil {
		out.SkipNil = true
	}
	if o.Force {
		out.Force = true
	}
	return out
}

/*
MultiOptions carries options for a batch operation.

A batch can share one Options across all keys, or provide a different
Options per key. Per-key options can be given two ways:

- PerKey: keyed by the cache key (a mapping)
- Ordered: aligned with the order the keys were passed in (a sequence)

Resolution order for key i: Ordered[i], then PerKey[key], then Shared.
*/
type MultiOptions struct {
	Shared  *Options
	PerKey  map[string]*Options
	Ordered []*Options
}

// For resolves the options for the i-th key of a batch.
func (m *MultiOptions) For(i int, key string) *Options {
	if m == nil {
		return nil
	}
	if i >= 0 && i < len(m.Ordered) && m.Ordered[i] != nil {
		return m.Ordered[i]
	}
	if o, ok := m.PerKey[key]; ok {
		return o
	}
	return m.Shared
}
