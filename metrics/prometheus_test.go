package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/elias19r/thread-cache"
	"github.com/elias19r/thread-cache/engine"
	"github.com/elias19r/thread-cache/metrics"
	"github.com/elias19r/thread-cache/types"
)

// counterValue reads one counter back out of the registry.
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() == name {
			require.Len(t, fam.GetMetric(), 1)
			return fam.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not registered", name)
	return 0
}

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg, "test")

	m.Hit()
	m.Hit()
	m.Miss()
	m.Expire()
	m.Mismatch()
	m.Write()
	m.Delete()

	assert.Equal(t, 2.0, counterValue(t, reg, "threadcache_hits_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_misses_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_expired_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_mismatched_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_writes_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_deletes_total"))
}

func TestWiredIntoCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg, "requests")

	c := cache.New(engine.New(nil, m), nil)

	c.Write("a", 1, nil)
	c.Read("a", nil)
	c.Read("missing", nil)
	c.Write("b", 2, &types.Options{Version: "v1"})
	c.Read("b", &types.Options{Version: "v2"})
	c.Delete("a")

	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_hits_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_misses_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_mismatched_total"))
	assert.Equal(t, 2.0, counterValue(t, reg, "threadcache_writes_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "threadcache_deletes_total"))
}
