// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/elias19r/thread-cache/types"
)

/*
Strategy is the interface that all expiration rules must follow. Instead of
hard-coding expiration logic into the cache, we define a strategy so the
behavior can be swapped easily.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at the given moment.
	IsExpired(*types.Entry, time.Time) bool

	// OnWrite is called whenever a cache entry is written or replaced,
	// so the strategy can stamp whatever timing metadata it needs.
	OnWrite(*types.Entry, time.Time)
}
