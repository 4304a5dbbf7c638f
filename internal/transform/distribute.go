package transform

import (
	"github.com/moustacheful/midori/internal/cycle"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Distribute round-robins incoming NoteOns across a fixed set of output
// channels, and guarantees that a later NoteOff for the same note reaches
// every channel its matching NoteOn was sent on — including when two held
// notes of the same pitch were assigned different channels.
type Distribute struct {
	Base

	Between []uint8

	cyc  *cycle.Cycle[uint8]
	held []heldNote // insertion order, oldest first
}

type heldNote struct {
	note    uint8
	channel uint8
}

func (d *Distribute) cycleIter() *cycle.Cycle[uint8] {
	if d.cyc == nil {
		d.cyc = cycle.New(d.Between, cycle.Forward, 1)
	}
	return d.cyc
}

func (d *Distribute) OnMessage(msg midi.RouterEvent, h scheduler.Handle) *midi.RouterEvent {
	e := msg.Event

	switch e.Kind {
	case midi.KindNoteOn:
		channel := d.cycleIter().Next()
		reassigned, _ := e.SetChannel(channel)
		d.held = append(d.held, heldNote{note: e.Note, channel: channel})
		out := msg
		out.Event = reassigned
		return &out

	case midi.KindNoteOff:
		remaining := d.held[:0]
		for _, entry := range d.held {
			if entry.note == e.Note {
				off := midi.NoteOff(entry.channel, e.Note, 0)
				h.SendNow(off.Wrap(msg.Device))
			} else {
				remaining = append(remaining, entry)
			}
		}
		d.held = remaining
		return nil

	default:
		return nil
	}
}
