package cache

import "context"

/*
This file maps "thread-local" onto Go.

Go has no thread-local storage; the native construct for state that
belongs to one execution context is context.Context. A Cache is attached
to a context under a namespace identifier, and every task or goroutine
derives its own context carrying its own Cache. Isolation then falls out
of ownership: no two goroutines ever touch the same mapping unless the
caller deliberately hands one across.

Namespaces let independent subsystems carry independent caches inside the
same context without stepping on each other.
*/

// contextKey is private so nothing outside this package can collide with
// an attached cache. The namespace string distinguishes caches.
type contextKey string

// DefaultNamespace is used by NewContext and FromContext.
const DefaultNamespace = "thread-cache"

// NewContext returns a copy of ctx carrying c under the default namespace.
func NewContext(ctx context.Context, c *Cache) context.Context {
	return WithNamespace(ctx, DefaultNamespace, c)
}

// WithNamespace returns a copy of ctx carrying c under the given
// namespace.
func WithNamespace(ctx context.Context, namespace string, c *Cache) context.Context {
	return context.WithValue(ctx, contextKey(namespace), c)
}

// FromContext returns the cache attached under the default namespace.
func FromContext(ctx context.Context) (*Cache, bool) {
	return FromNamespace(ctx, DefaultNamespace)
}

// FromNamespace returns the cache attached under the given namespace.
func FromNamespace(ctx context.Context, namespace string) (*Cache, bool) {
	c, ok := ctx.Value(contextKey(namespace)).(*Cache)
	return c, ok
}
