package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache calls
these methods whenever something happens.
*/
type Metrics interface {

	// Hit is called when a read finds a valid entry.
	Hit()

	// Miss is called when a read finds no entry at all.
	Miss()

	// Expire is called when a read or cleanup removes an entry because
	// its time-to-live has passed.
	Expire()

	// Mismatch is called when a read or cleanup removes an entry because
	// its version tag does not match the requested one.
	Mismatch()

	// Write is called when an entry is stored or replaced.
	Write()

	// Delete is called when an entry is removed explicitly
	// (Delete, DeleteMulti, DeleteMatched, Clear).
	Delete()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

We don't want to force every user of the cache to implement metrics.
If someone does not care about them, the cache should still work without
nil checks everywhere, so this default implementation simply ignores all
metric events.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Expire()   {}
func (NoopMetrics) Mismatch() {}
func (NoopMetrics) Write()    {}
func (NoopMetrics) Delete()   {}
