package transform

import (
	"time"

	"github.com/moustacheful/midori/internal/cycle"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

const defaultNoteDurationMs = 250

// Arpeggio steps through the set of currently held notes on every
// subscribed tick, scheduling a NoteOn immediately and its matching
// NoteOff after a fixed duration. Held-note sequencing is carried across
// calls as per-instance state, stepped by the cycle iterator.
type Arpeggio struct {
	Base

	Subdivision    float64
	Direction      cycle.Direction
	Repeat         int
	NoteDurationMs int

	held []midi.Event // insertion-ordered held NoteOns
	cyc  *cycle.Cycle[midi.Event]
}

func (a *Arpeggio) TempoSubdiv() *float64 {
	r := a.Subdivision
	return &r
}

func (a *Arpeggio) noteDuration() time.Duration {
	ms := a.NoteDurationMs
	if ms <= 0 {
		ms = defaultNoteDurationMs
	}
	return time.Duration(ms) * time.Millisecond
}

func (a *Arpeggio) repeat() int {
	if a.Repeat < 1 {
		return 1
	}
	return a.Repeat
}

func (a *Arpeggio) syncCycle() {
	if a.cyc == nil {
		a.cyc = cycle.New(a.held, a.Direction, a.repeat())
		return
	}
	a.cyc.Update(a.held)
}

func (a *Arpeggio) OnTick(h scheduler.Handle) *midi.RouterEvent {
	if len(a.held) == 0 {
		return nil
	}

	noteOn := a.cyc.Next()
	noteOff := noteOn.AsNoteOff()

	h.SendNow(noteOn.Wrap("self"))
	h.SendLater(noteOff.Wrap("self"), a.noteDuration())

	return nil
}

func (a *Arpeggio) OnMessage(msg midi.RouterEvent, _ scheduler.Handle) *midi.RouterEvent {
	e := msg.Event

	switch e.Kind {
	case midi.KindNoteOn:
		a.held = append(a.held, e)
		a.syncCycle()
		return nil

	case midi.KindNoteOff:
		remaining := a.held[:0]
		for _, n := range a.held {
			if n.Note != e.Note {
				remaining = append(remaining, n)
			}
		}
		a.held = remaining
		a.syncCycle()
		return nil

	default:
		return &msg
	}
}
