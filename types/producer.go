package types

import "context"

/*
Producer computes a value for a key on behalf of Fetch.

The cache calls it only when it does not already hold a valid entry for
the key (or when the caller forces a recompute). This can be a database
call, an API call, or any other computation.

The cache stores whatever the producer returns (subject to SkipNil) and
passes the error through unchanged.
*/
type Producer func(ctx context.Context, key string) (any, error)
