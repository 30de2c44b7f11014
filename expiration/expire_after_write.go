package expiration

import (
	"time"

	"github.com/elias19r/thread-cache/types"
)

/*
ExpireAfterWrite implements the classic fixed time-to-live behavior.
The clock starts when the entry is written and is never pushed forward by
reads. Once CreatedAt + ExpiresIn has passed, the entry is dead no matter
how recently it was used.
*/
type ExpireAfterWrite struct {

	// DefaultTTL is applied to entries written without an explicit
	// time-to-live. Zero means such entries never expire.
	DefaultTTL time.Duration
}

/*
IsExpired checks whether the entry is expired at this moment.

The boundary is inclusive: an entry whose deadline equals now is already
expired. Entries with no TTL never expire.
*/
func (e *ExpireAfterWrite) IsExpired(ent *types.Entry, now time.Time) bool {
	if ent.ExpiresIn <= 0 {
		return false
	}
	return !now.Before(ent.CreatedAt.Add(ent.ExpiresIn))
}

/*
OnWrite is called when the entry is written or replaced.

- We record when the entry was created
- We apply the default TTL if the caller did not set one explicitly

We only fill ExpiresIn when it is zero, because the caller might have set
a per-call TTL and we do NOT want to overwrite it.
*/
func (e *ExpireAfterWrite) OnWrite(ent *types.Entry, now time.Time) {
	ent.CreatedAt = now
	if ent.ExpiresIn == 0 {
		ent.ExpiresIn = e.DefaultTTL
	}
}
