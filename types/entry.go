package types

import "time"

// Entry is one stored value together with its validity metadata.
// An entry is created on write and replaced wholesale on rewrite.
type Entry struct {
	Key   string
	Value any

	// Version is an opaque tag used for optimistic invalidation.
	// Empty means the entry carries no version.
	Version string

	// ExpiresIn is how long the entry stays valid after CreatedAt.
	// Zero means the entry never expires.
	ExpiresIn time.Duration

	CreatedAt time.Time
}
