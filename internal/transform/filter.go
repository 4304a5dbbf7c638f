package transform

import (
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Filter forwards a message only if it passes every configured
// dimension, ANDing together independently-configured filter
// specifications. An empty allowlist on a dimension means "do not
// constrain on this dimension".
type Filter struct {
	Base

	Devices  []string
	Channels []uint8
	Kinds    []midi.Kind
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (f *Filter) passesDevice(device string) bool {
	return len(f.Devices) == 0 || contains(f.Devices, device)
}

func (f *Filter) passesKind(kind midi.Kind) bool {
	return len(f.Kinds) == 0 || contains(f.Kinds, kind)
}

func (f *Filter) passesChannel(e midi.Event) bool {
	if len(f.Channels) == 0 {
		return true
	}
	ch, err := e.GetChannel()
	if err != nil {
		// Realtime events carry no channel; they only pass the channel
		// dimension when it is unconstrained, which was handled above.
		return false
	}
	return contains(f.Channels, ch)
}

func (f *Filter) OnMessage(msg midi.RouterEvent, _ scheduler.Handle) *midi.RouterEvent {
	if !f.passesDevice(msg.Device) {
		return nil
	}
	if !f.passesKind(msg.Event.Kind) {
		return nil
	}
	if !f.passesChannel(msg.Event) {
		return nil
	}
	return &msg
}
