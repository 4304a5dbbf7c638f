package transform

import (
	"testing"

	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

func noopHandle() scheduler.Handle {
	_, h := scheduler.New()
	return h
}

func TestFilter_EmptyAllowlistsPassEverything(t *testing.T) {
	f := &Filter{}
	h := noopHandle()

	msg := midi.NoteOn(3, 60, 100).Wrap("keys")
	out := f.OnMessage(msg, h)

	assert.Equal(t, &msg, out)
}

func TestFilter_DeviceAllowlist(t *testing.T) {
	f := &Filter{Devices: []string{"keys"}}
	h := noopHandle()

	assert.NotNil(t, f.OnMessage(midi.NoteOn(0, 1, 1).Wrap("keys"), h))
	assert.Nil(t, f.OnMessage(midi.NoteOn(0, 1, 1).Wrap("pads"), h))
}

func TestFilter_ChannelAllowlist(t *testing.T) {
	f := &Filter{Channels: []uint8{0, 1}}
	h := noopHandle()

	assert.NotNil(t, f.OnMessage(midi.NoteOn(1, 1, 1).Wrap("a"), h))
	assert.Nil(t, f.OnMessage(midi.NoteOn(5, 1, 1).Wrap("a"), h))
}

func TestFilter_ChannelAllowlistRejectsRealtime(t *testing.T) {
	f := &Filter{Channels: []uint8{0}}
	h := noopHandle()

	assert.Nil(t, f.OnMessage(midi.TimingClock().Wrap("a"), h))
}

func TestFilter_RealtimePassesWhenChannelsUnconstrained(t *testing.T) {
	f := &Filter{}
	h := noopHandle()

	assert.NotNil(t, f.OnMessage(midi.TimingClock().Wrap("a"), h))
}

func TestFilter_KindAllowlist(t *testing.T) {
	f := &Filter{Kinds: []midi.Kind{midi.KindNoteOn}}
	h := noopHandle()

	assert.NotNil(t, f.OnMessage(midi.NoteOn(0, 1, 1).Wrap("a"), h))
	assert.Nil(t, f.OnMessage(midi.Controller(0, 1, 1).Wrap("a"), h))
}

func TestFilter_LogicalAndAcrossDimensions(t *testing.T) {
	f := &Filter{Devices: []string{"keys"}, Channels: []uint8{0}}
	h := noopHandle()

	// Wrong device, right channel.
	assert.Nil(t, f.OnMessage(midi.NoteOn(0, 1, 1).Wrap("pads"), h))
	// Right device, wrong channel.
	assert.Nil(t, f.OnMessage(midi.NoteOn(5, 1, 1).Wrap("keys"), h))
	// Both right.
	assert.NotNil(t, f.OnMessage(midi.NoteOn(0, 1, 1).Wrap("keys"), h))
}
