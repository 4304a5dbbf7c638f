package transform

import (
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Mirror clones every received message onto each of a configured set of
// channels, side-channeling all of them through the scheduler and
// producing no primary output.
type Mirror struct {
	Base

	Channels []uint8
}

func (m *Mirror) OnMessage(msg midi.RouterEvent, h scheduler.Handle) *midi.RouterEvent {
	for _, ch := range m.Channels {
		out, err := msg.Event.SetChannel(ch)
		if err != nil {
			continue
		}
		h.SendNow(out.Wrap(msg.Device))
	}
	return nil
}
