package cache

import "github.com/elias19r/thread-cache/api"

// Cache must keep satisfying the public contract in api.
var _ api.Cache = (*Cache)(nil)
