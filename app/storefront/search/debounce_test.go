package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCoalescesRapidCalls(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var fired int32
	var lastSeq uint64
	done := make(chan struct{}, 3)

	fetch := func(seq uint64) {
		atomic.AddInt32(&fired, 1)
		atomic.StoreUint64(&lastSeq, seq)
		done <- struct{}{}
	}

	d.Trigger(fetch)
	d.Trigger(fetch)
	d.Trigger(fetch)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced fetch never fired")
	}
	// Give cancelled timers a moment to prove they stay quiet.
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.Equal(t, uint64(3), atomic.LoadUint64(&lastSeq))
}

func TestApplyDiscardsStaleSequence(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	defer d.Stop()

	var applied []string

	// The later request's response lands first.
	require.True(t, d.Apply(2, func() { applied = append(applied, "new") }))
	assert.False(t, d.Apply(1, func() { applied = append(applied, "old") }))

	assert.Equal(t, []string{"new"}, applied)
}

func TestApplyAcceptsNewerSequence(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	defer d.Stop()

	assert.True(t, d.Apply(1, func() {}))
	assert.True(t, d.Apply(2, func() {}))
	assert.False(t, d.Apply(2, func() {}))
}

func TestSequencesAreMonotonic(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	defer d.Stop()

	seqs := make(chan uint64, 2)
	d.Trigger(func(seq uint64) { seqs <- seq })
	first := <-seqs

	d.Trigger(func(seq uint64) { seqs <- seq })
	second := <-seqs

	assert.Greater(t, second, first)
}

func TestStopCancelsPendingTrigger(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired int32
	d.Trigger(func(seq uint64) { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}
