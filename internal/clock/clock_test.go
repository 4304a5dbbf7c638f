package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvWithin(t *testing.T, ch <-chan struct{}, d time.Duration) bool {
	t.Helper()
	select {
	case <-ch:
		return true
	case <-time.After(d):
		return false
	}
}

func TestInternal_SilentWithoutSubscribers(t *testing.T) {
	ic, _ := NewInternal(1500, 4) // 10ms per base tick
	defer ic.Stop()

	time.Sleep(30 * time.Millisecond)
	// No subscribers were ever registered; nothing to assert on other than
	// that this does not panic or deadlock.
}

func TestInternal_Subdivision(t *testing.T) {
	ic, h := NewInternal(1500, 4) // 10ms per base tick, ppqn=4, ratio=1.0 => one emission per 4 ticks (40ms)
	defer ic.Stop()

	stream := h.Subscribe(1.0)

	start := time.Now()
	require.True(t, recvWithin(t, stream, 200*time.Millisecond))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

func TestInternal_SetBPMReconfiguresInterval(t *testing.T) {
	ic, h := NewInternal(60, 4)
	defer ic.Stop()

	stream := h.Subscribe(1.0)
	h.SetBPM(6000) // much faster

	require.True(t, recvWithin(t, stream, 500*time.Millisecond))
}

func TestExternal_TickRepublishedToSubscribers(t *testing.T) {
	ec, h := NewExternal(4)
	defer ec.Stop()

	stream := h.Subscribe(1.0) // n = 4

	for i := 0; i < 3; i++ {
		ec.Tick()
		assert.False(t, recvWithin(t, stream, 20*time.Millisecond))
	}
	ec.Tick()
	assert.True(t, recvWithin(t, stream, time.Second))
}

func TestExternal_SetBPMIsNoOp(t *testing.T) {
	ec, h := NewExternal(4)
	defer ec.Stop()

	assert.NotPanics(t, func() { h.SetBPM(120) })
}

func TestExternal_RestartMakesNextTickEmit(t *testing.T) {
	ec, h := NewExternal(4)
	defer ec.Stop()

	stream := h.Subscribe(1.0) // n = 4

	ec.Tick()
	ec.Tick()
	// Mid-cycle; next tick would not normally emit (counter at 2, needs to
	// reach 3).
	ec.Restart()
	ec.Tick()

	assert.True(t, recvWithin(t, stream, time.Second))
}

func TestExternal_RestartAffectsAllActiveSubscriptions(t *testing.T) {
	ec, h := NewExternal(4)
	defer ec.Stop()

	a := h.Subscribe(1.0)
	b := h.Subscribe(0.5) // n = 2

	ec.Tick()
	ec.Restart()
	ec.Tick()

	assert.True(t, recvWithin(t, a, time.Second))
	assert.True(t, recvWithin(t, b, time.Second))
}
