// Package metrics provides a Prometheus-backed implementation of
// types.Metrics for applications that already run a Prometheus registry.
// The cache itself only ever talks to the types.Metrics interface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/elias19r/thread-cache/types"
)

// Prometheus counts cache lifecycle events as Prometheus counters.
//
// All counters share the "threadcache" metric namespace and carry a
// "scope" label so several cache scopes can report into one registry.
type Prometheus struct {
	hits       prometheus.Counter
	misses     prometheus.Counter
	expired    prometheus.Counter
	mismatched prometheus.Counter
	writes     prometheus.Counter
	deletes    prometheus.Counter
}

// NewPrometheus registers the cache counters on reg under the given scope
// label and returns the Metrics implementation. It panics on duplicate
// registration, like promauto does.
func NewPrometheus(reg prometheus.Registerer, scope string) *Prometheus {
	labels := prometheus.Labels{"scope": scope}
	counter := func(name, help string) prometheus.Counter {
		return promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace:   "threadcache",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	return &Prometheus{
		hits:       counter("hits_total", "Reads that found a valid entry."),
		misses:     counter("misses_total", "Reads that found no entry."),
		expired:    counter("expired_total", "Entries removed because their TTL passed."),
		mismatched: counter("mismatched_total", "Entries removed because of a version conflict."),
		writes:     counter("writes_total", "Entries stored or replaced."),
		deletes:    counter("deletes_total", "Entries removed explicitly."),
	}
}

var _ types.Metrics = (*Prometheus)(nil)

func (p *Prometheus) Hit()      { p.hits.Inc() }
func (p *Prometheus) Miss()     { p.misses.Inc() }
func (p *Prometheus) Expire()   { p.expired.Inc() }
func (p *Prometheus) Mismatch() { p.mismatched.Inc() }
func (p *Prometheus) Write()    { p.writes.Inc() }
func (p *Prometheus) Delete()   { p.deletes.Inc() }
