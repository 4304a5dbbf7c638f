package transform

import (
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Output stamps the configured device alias onto every message's Device
// field and forwards it, so the pipeline's result reaches the correct
// physical port once the router collects it from egress.
type Output struct {
	Base

	Device string
}

func (o *Output) OnMessage(msg midi.RouterEvent, _ scheduler.Handle) *midi.RouterEvent {
	out := msg
	out.Device = o.Device
	return &out
}

func (o *Output) OnTick(_ scheduler.Handle) *midi.RouterEvent { return nil }
