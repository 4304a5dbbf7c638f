// Package clock implements the tempo subsystem: an internal tempo
// generator, an external-clock follower driven by incoming TimingClock
// bytes, and the fan-out of tempo-subdivision tick streams to subscribers.
// A background goroutine owns timing and signals waiters over channels,
// the same wake/notify shape as a condition-variable-driven transmit
// queue, generalized to time.Ticker-driven fan-out over many subscriber
// channels instead of a single per-channel sync.Cond.
package clock

import (
	"math"
	"sync"
	"time"
)

type controlMsg int

const (
	msgTick controlMsg = iota
	msgRestart
)

// subscription is one subscriber's view of the base tick stream, counting
// base ticks up to its configured subdivision ratio.
type subscription struct {
	in  chan controlMsg // raw control messages, drop-oldest on overflow
	out chan struct{}   // subdivided pulses delivered to the caller

	n       int // floor(ppqn*ratio), minimum 1
	counter int // 0..n-1
}

func newSubscription(n int) *subscription {
	if n < 1 {
		n = 1
	}
	return &subscription{
		in:  make(chan controlMsg, 8),
		out: make(chan struct{}, 8),
		n:   n,
	}
}

func (s *subscription) run() {
	defer close(s.out)

	for msg := range s.in {
		switch msg {
		case msgRestart:
			// Force the very next base tick to emit.
			s.counter = s.n - 1

		case msgTick:
			if s.counter == s.n-1 {
				select {
				case s.out <- struct{}{}:
				default:
					// Downstream hasn't drained; this subdivision pulse is
					// best-effort, same as the base broadcast below.
				}
				s.counter = 0
			} else {
				s.counter++
			}
		}
	}
}

// core is the shared subscriber registry and broadcast mechanism used by
// both Internal and External clocks.
type core struct {
	mu   sync.Mutex
	ppqn int
	subs []*subscription
}

func (c *core) subscribe(ratio float64) <-chan struct{} {
	n := int(math.Floor(float64(c.ppqn) * ratio))
	sub := newSubscription(n)

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	go sub.run()

	return sub.out
}

func (c *core) subscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// broadcast delivers msg to every subscriber without blocking. A
// subscriber whose inbox is full has its oldest pending message dropped so
// the clock never stalls.
func (c *core) broadcast(msg controlMsg) {
	c.mu.Lock()
	subs := make([]*subscription, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.in <- msg:
		default:
			select {
			case <-sub.in:
			default:
			}
			select {
			case sub.in <- msg:
			default:
			}
		}
	}
}

// Handle exposes subscribe(ratio) and set_bpm(bpm) to pipeline stages. It
// is shareable: many transforms may hold and use the same Handle
// concurrently.
type Handle struct {
	core   *core
	setBPM func(bpm float64)
}

// Subscribe returns a stream that emits one unit event per
// floor(ppqn*ratio) incoming base ticks.
func (h Handle) Subscribe(ratio float64) <-chan struct{} {
	return h.core.subscribe(ratio)
}

// SetBPM reconfigures the tempo. No-op on a handle to an External clock.
func (h Handle) SetBPM(bpm float64) {
	if h.setBPM != nil {
		h.setBPM(bpm)
	}
}

func intervalFor(bpm float64, ppqn int) time.Duration {
	micros := 60_000_000.0 / (bpm * float64(ppqn))
	return time.Duration(micros * float64(time.Microsecond))
}
