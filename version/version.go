// Package version holds the rules for the optimistic version tags that
// cache entries carry. A tag is an opaque string: the cache never parses
// it, it only compares it for equality.
package version

import "github.com/google/uuid"

/*
Mismatch reports whether a stored tag conflicts with a requested one.

The rule is deliberately forgiving: a conflict exists only when BOTH sides
carry a tag and the tags differ. An unversioned entry satisfies any
request, and an unversioned request accepts any entry.
*/
func Mismatch(stored, requested string) bool {
	return stored != "" && requested != "" && stored != requested
}

// New returns a fresh opaque tag for callers that do not derive versions
// from their own data (record timestamps, digests, etc).
func New() string {
	return uuid.NewString()
}
