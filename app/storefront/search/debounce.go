package search

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid search-input changes into one fetch after a fixed
// delay, and tags every fetch with a monotonic sequence number. A slow early
// response that arrives after a faster later one carries an older sequence
// and is discarded rather than overwriting newer results.
type Debouncer struct {
	mu          sync.Mutex
	delay       time.Duration
	timer       *time.Timer
	nextSeq     uint64
	lastApplied uint64
}

const DefaultDelay = 300 * time.Millisecond

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fetch to run after the debounce delay, cancelling any
// not-yet-fired earlier trigger. The sequence number passed to fetch must be
// handed back to Apply together with the result.
func (d *Debouncer) Trigger(fetch func(seq uint64)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.nextSeq++
	seq := d.nextSeq
	d.timer = time.AfterFunc(d.delay, func() {
		fetch(seq)
	})
}

// Apply runs apply only when seq is newer than the last applied sequence.
// Returns false when the response is stale and was discarded.
func (d *Debouncer) Apply(seq uint64, apply func()) bool {
	d.mu.Lock()
	if seq <= d.lastApplied {
		d.mu.Unlock()
		return false
	}
	d.lastApplied = seq
	d.mu.Unlock()

	apply()
	return true
}

// Stop cancels a pending trigger, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
