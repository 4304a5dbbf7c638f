package transform

import (
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Map rewrites channel numbers and Controller controller-numbers
// according to two independent lookup tables, always forwarding the
// (possibly rewritten) event.
type Map struct {
	Base

	Channels    map[uint8]uint8
	Controllers map[uint8]uint8
}

func (m *Map) OnMessage(msg midi.RouterEvent, _ scheduler.Handle) *midi.RouterEvent {
	e := msg.Event

	if ch, err := e.GetChannel(); err == nil {
		if mapped, ok := m.Channels[ch]; ok {
			e, _ = e.SetChannel(mapped)
		}
	}

	if e.Kind == midi.KindController {
		if mapped, ok := m.Controllers[e.Controller]; ok {
			e.Controller = mapped
		}
	}

	out := msg
	out.Event = e
	return &out
}
