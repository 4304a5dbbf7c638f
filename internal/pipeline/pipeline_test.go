package pipeline

import (
	"testing"
	"time"

	"github.com/moustacheful/midori/internal/clock"
	"github.com/moustacheful/midori/internal/cycle"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, ch <-chan midi.RouterEvent, d time.Duration) midi.RouterEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(d):
		require.FailNow(t, "timed out waiting for pipeline output")
		return midi.RouterEvent{}
	}
}

func TestPipeline_ChainsTransformsInOrder(t *testing.T) {
	transforms := []transform.Transform{
		&transform.Map{Channels: map[uint8]uint8{0: 5}},
		&transform.Output{Device: "main-out"},
	}

	p := New("keys-to-main", transforms, clock.Handle{})

	p.Input <- midi.NoteOn(0, 60, 100).Wrap("keys")

	got := recvEvent(t, p.Output, time.Second)
	assert.Equal(t, "main-out", got.Device)
	assert.Equal(t, uint8(5), got.Event.Channel)
}

func TestPipeline_FilterDropsNonMatchingMessages(t *testing.T) {
	transforms := []transform.Transform{
		&transform.Filter{Channels: []uint8{2}},
		&transform.Output{Device: "out"},
	}

	p := New("filtered", transforms, clock.Handle{})

	p.Input <- midi.NoteOn(9, 60, 100).Wrap("keys")
	p.Input <- midi.NoteOn(2, 61, 100).Wrap("keys")

	got := recvEvent(t, p.Output, time.Second)
	assert.Equal(t, uint8(61), got.Event.Note)
}

func TestPipeline_ArpeggioTickSubscriptionFeedsStage(t *testing.T) {
	ic, clk := clock.NewInternal(6000, 4) // fast ticks for the test
	defer ic.Stop()

	transforms := []transform.Transform{
		&transform.Arpeggio{Subdivision: 1.0, Direction: cycle.Forward, NoteDurationMs: 20},
		&transform.Output{Device: "main-out"},
	}

	p := New("arp", transforms, clk)

	p.Input <- midi.NoteOn(0, 60, 100).Wrap("keys")

	on := recvEvent(t, p.Output, time.Second)
	assert.Equal(t, "main-out", on.Device)
	assert.Equal(t, midi.KindNoteOn, on.Event.Kind)
	assert.Equal(t, uint8(60), on.Event.Note)

	off := recvEvent(t, p.Output, time.Second)
	assert.Equal(t, "main-out", off.Device)
	assert.Equal(t, midi.KindNoteOff, off.Event.Kind)
	assert.Equal(t, uint8(60), off.Event.Note)
}
