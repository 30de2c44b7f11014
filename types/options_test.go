package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elias19r/thread-cache/types"
)

func TestMerge(t *testing.T) {
	def := &types.Options{Version: "v1", ExpiresIn: time.Minute}

	// Nil call options: defaults pass through.
	out := types.Merge(nil, def)
	assert.Equal(t, *def, out)

	// Zero fields fall back, set fields win.
	out = types.Merge(&types.Options{Version: "v2"}, def)
	assert.Equal(t, "v2", out.Version)
	assert.Equal(t, time.Minute, out.ExpiresIn)

	out = types.Merge(&types.Options{ExpiresIn: time.Second, SkipNil: true}, def)
	assert.Equal(t, "v1", out.Version)
	assert.Equal(t, time.Second, out.ExpiresIn)
	assert.True(t, out.SkipNil)

	// Both nil is fine.
	assert.Zero(t, types.Merge(nil, nil))
}

func TestMultiOptionsFor(t *testing.T) {
	shared := &types.Options{Version: "shared"}
	perKey := &types.Options{Version: "per-key"}
	ordered := &types.Options{Version: "ordered"}

	m := &types.MultiOptions{
		Shared:  shared,
		PerKey:  map[string]*types.Options{"b": perKey},
		Ordered: []*types.Options{nil, nil, ordered},
	}

	// Ordered wins when present for the index.
	assert.Equal(t, ordered, m.For(2, "b"))

	// Then the per-key mapping.
	assert.Equal(t, perKey, m.For(0, "b"))

	// Then the shared options.
	assert.Equal(t, shared, m.For(1, "a"))
	assert.Equal(t, shared, m.For(-1, "a"))

	// Nil receiver is a valid "no options at all".
	var none *types.MultiOptions
	assert.Nil(t, none.For(0, "a"))
}
