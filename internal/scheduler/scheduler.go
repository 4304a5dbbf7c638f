// Package scheduler implements a per-transform side channel for emitting
// router events immediately or after a delay: callers enqueue and move
// on, unconcerned with when the event is actually read, while Stream
// holds anything not yet drained by its single consumer (the pipeline
// stage that owns this scheduler).
package scheduler

import (
	"sync"
	"time"

	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/queue"
)

// Handle lets a transform enqueue events for emission now or after a
// delay. Handles are shareable (a transform keeps one, the pipeline's
// scheduler-output stream reads from the paired Scheduler).
type Handle struct {
	in chan<- midi.RouterEvent
}

// SendNow enqueues e immediately, FIFO among other SendNow calls. If the
// scheduler has been closed (pipeline shutdown), the send is silently
// ignored.
func (h Handle) SendNow(e midi.RouterEvent) {
	defer func() { recover() }() // send on closed channel after shutdown
	h.in <- e
}

// SendLater spawns a goroutine that waits delay and then enqueues e. There
// is no cancellation; a send after the scheduler has been closed is
// silently ignored.
func (h Handle) SendLater(e midi.RouterEvent, delay time.Duration) {
	go func() {
		time.Sleep(delay)
		defer func() { recover() }()
		h.in <- e
	}()
}

// Scheduler owns an unbounded queue of router events ready to emit. Stream
// is consumed exactly once by the pipeline stage that created it.
type Scheduler struct {
	Stream <-chan midi.RouterEvent

	in       chan midi.RouterEvent
	closeOne sync.Once
}

// New creates a Scheduler and its paired Handle. SendNow/SendLater never
// block on a slow downstream consumer: Stream is backed by an unbounded
// buffer.
func New() (*Scheduler, Handle) {
	in := make(chan midi.RouterEvent)
	s := &Scheduler{Stream: queue.Unbounded(in), in: in}
	return s, Handle{in: in}
}

// Close stops accepting new events and, once any already-enqueued events
// have drained, closes Stream. Safe to call once the pipeline stage that
// owns this scheduler has no more readers; any SendNow/SendLater still in
// flight recovers from the resulting panic and drops silently.
func (s *Scheduler) Close() {
	s.closeOne.Do(func() { close(s.in) })
}
