package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elias19r/thread-cache/engine"
	"github.com/elias19r/thread-cache/expiration"
	"github.com/elias19r/thread-cache/types"
)

// countingMetrics records events so tests can assert on dispatch.
type countingMetrics struct {
	hits, misses, expired, mismatched, writes, deletes int
}

func (m *countingMetrics) Hit()      { m.hits++ }
func (m *countingMetrics) Miss()     { m.misses++ }
func (m *countingMetrics) Expire()   { m.expired++ }
func (m *countingMetrics) Mismatch() { m.mismatched++ }
func (m *countingMetrics) Write()    { m.writes++ }
func (m *countingMetrics) Delete()   { m.deletes++ }

func TestNewDefaultsMetricsToNoop(t *testing.T) {
	e := engine.New(nil, nil)
	require.NotNil(t, e.Metrics)

	// Must not panic.
	e.Metrics.Hit()
	e.OnWrite(&types.Entry{})
}

func TestCheckVerdicts(t *testing.T) {
	e := engine.New(&expiration.ExpireAfterWrite{}, nil)

	fresh := &types.Entry{CreatedAt: time.Now(), ExpiresIn: time.Hour}
	assert.Equal(t, engine.Valid, e.Check(fresh, ""))

	stale := &types.Entry{CreatedAt: time.Now().Add(-2 * time.Hour), ExpiresIn: time.Hour}
	assert.Equal(t, engine.Expired, e.Check(stale, ""))

	tagged := &types.Entry{CreatedAt: time.Now(), Version: "v1"}
	assert.Equal(t, engine.Mismatched, e.Check(tagged, "v2"))
	assert.Equal(t, engine.Valid, e.Check(tagged, "v1"))
	assert.Equal(t, engine.Valid, e.Check(tagged, ""))
}

func TestCheckExpiryWinsOverMismatch(t *testing.T) {
	e := engine.New(&expiration.ExpireAfterWrite{}, nil)

	// Both expired and mismatched: reported as expired.
	ent := &types.Entry{
		CreatedAt: time.Now().Add(-time.Hour),
		ExpiresIn: time.Minute,
		Version:   "v1",
	}
	assert.Equal(t, engine.Expired, e.Check(ent, "v2"))
}

func TestReportInvalid(t *testing.T) {
	m := &countingMetrics{}
	e := engine.New(nil, m)

	e.ReportInvalid(engine.Expired)
	e.ReportInvalid(engine.Mismatched)
	e.ReportInvalid(engine.Valid) // no-op

	assert.Equal(t, 1, m.expired)
	assert.Equal(t, 1, m.mismatched)
}

func TestOnWriteStampsAndCounts(t *testing.T) {
	m := &countingMetrics{}
	e := engine.New(&expiration.ExpireAfterWrite{DefaultTTL: time.Minute}, m)

	ent := &types.Entry{}
	e.OnWrite(ent)

	assert.False(t, ent.CreatedAt.IsZero())
	assert.Equal(t, time.Minute, ent.ExpiresIn)
	assert.Equal(t, 1, m.writes)
}

func TestProduce(t *testing.T) {
	e := engine.New(nil, nil)

	v, err := e.Produce(context.Background(), "key",
		func(ctx context.Context, key string) (any, error) {
			return "value:" + key, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "value:key", v)
}
