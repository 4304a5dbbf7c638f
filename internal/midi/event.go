// Package midi implements the event model and binary codec for MIDI
// channel-voice and system-realtime messages.
package midi

import "fmt"

// Kind tags the variant carried by an Event.
type Kind int

const (
	KindNoteOff Kind = iota
	KindNoteOn
	KindPolyphonicPressure
	KindController
	KindChannelPressure
	KindProgramChange
	KindPitchBend
	KindTimingClock
	KindPlaybackStart
	KindPlaybackStop
	KindPlaybackContinue
	KindPlaybackPosition
)

func (k Kind) String() string {
	switch k {
	case KindNoteOff:
		return "NoteOff"
	case KindNoteOn:
		return "NoteOn"
	case KindPolyphonicPressure:
		return "PolyphonicPressure"
	case KindController:
		return "Controller"
	case KindChannelPressure:
		return "ChannelPressure"
	case KindProgramChange:
		return "ProgramChange"
	case KindPitchBend:
		return "PitchBend"
	case KindTimingClock:
		return "TimingClock"
	case KindPlaybackStart:
		return "PlaybackStart"
	case KindPlaybackStop:
		return "PlaybackStop"
	case KindPlaybackContinue:
		return "PlaybackContinue"
	case KindPlaybackPosition:
		return "PlaybackPosition"
	default:
		return "Unknown"
	}
}

// Event is a tagged-variant MIDI message. Only the fields relevant to Kind
// are meaningful; a single Go type holds every variant's fields so
// transforms can pass events around as plain values without a type switch
// at every boundary.
type Event struct {
	Kind Kind

	Channel  uint8 // 0..15, channel-voice variants only
	Note     uint8 // 0..127
	Velocity uint8 // 0..127

	Pressure   uint8 // 0..127
	Controller uint8 // 0..127
	Value      uint8 // 0..127
	Program    uint8 // 0..127

	LSB uint8 // 0..127, PitchBend
	MSB uint8 // 0..127, PitchBend

	Position uint16 // PlaybackPosition, 14-bit value
}

// NoteOff builds a NoteOff event.
func NoteOff(channel, note, velocity uint8) Event {
	return Event{Kind: KindNoteOff, Channel: channel, Note: note, Velocity: velocity}
}

// NoteOn builds a NoteOn event. Velocity 0 is canonicalised to NoteOff on
// serialisation, not on construction, so that callers can observe the
// distinction up until bytes hit the wire.
func NoteOn(channel, note, velocity uint8) Event {
	return Event{Kind: KindNoteOn, Channel: channel, Note: note, Velocity: velocity}
}

func PolyphonicPressure(channel, note, pressure uint8) Event {
	return Event{Kind: KindPolyphonicPressure, Channel: channel, Note: note, Pressure: pressure}
}

func Controller(channel, controller, value uint8) Event {
	return Event{Kind: KindController, Channel: channel, Controller: controller, Value: value}
}

func ChannelPressure(channel, pressure uint8) Event {
	return Event{Kind: KindChannelPressure, Channel: channel, Pressure: pressure}
}

func ProgramChange(channel, program uint8) Event {
	return Event{Kind: KindProgramChange, Channel: channel, Program: program}
}

func PitchBend(channel, lsb, msb uint8) Event {
	return Event{Kind: KindPitchBend, Channel: channel, LSB: lsb, MSB: msb}
}

func TimingClock() Event        { return Event{Kind: KindTimingClock} }
func PlaybackStart() Event      { return Event{Kind: KindPlaybackStart} }
func PlaybackStop() Event       { return Event{Kind: KindPlaybackStop} }
func PlaybackContinue() Event   { return Event{Kind: KindPlaybackContinue} }
func PlaybackPosition(p uint16) Event {
	return Event{Kind: KindPlaybackPosition, Position: p}
}

// IsRealtime reports whether e is one of the five system-realtime variants,
// which carry no channel.
func (e Event) IsRealtime() bool {
	switch e.Kind {
	case KindTimingClock, KindPlaybackStart, KindPlaybackStop, KindPlaybackContinue, KindPlaybackPosition:
		return true
	default:
		return false
	}
}

// ErrNoChannel is returned by GetChannel/SetChannel on realtime variants.
var ErrNoChannel = fmt.Errorf("midi: realtime events carry no channel")

// GetChannel returns e's channel. It fails on realtime variants.
func (e Event) GetChannel() (uint8, error) {
	if e.IsRealtime() {
		return 0, ErrNoChannel
	}
	return e.Channel, nil
}

// SetChannel returns a copy of e with its channel replaced. It fails on
// realtime variants.
func (e Event) SetChannel(channel uint8) (Event, error) {
	if e.IsRealtime() {
		return e, ErrNoChannel
	}
	e.Channel = channel
	return e, nil
}

// AsNoteOff returns the NoteOff counterpart of a NoteOn event, carrying the
// same channel and note with velocity forced to 0. Mirrors the original
// implementation's NoteEvent::get_note_off.
func (e Event) AsNoteOff() Event {
	return Event{Kind: KindNoteOff, Channel: e.Channel, Note: e.Note, Velocity: 0}
}

// RouterEvent pairs a MIDI event with the logical device alias it arrived
// from (or should be sent to).
type RouterEvent struct {
	Device string
	Event  Event
}

// Wrap builds a RouterEvent carrying e, tagged with device. Transforms that
// synthesize new events (Distribute, Arpeggio, Mirror) use this instead of
// repeating the struct literal; the device is typically overwritten
// downstream by an Output stage.
func (e Event) Wrap(device string) RouterEvent {
	return RouterEvent{Device: device, Event: e}
}

func (e Event) String() string {
	switch e.Kind {
	case KindNoteOff, KindNoteOn:
		return fmt.Sprintf("%s{ch=%d note=%d vel=%d}", e.Kind, e.Channel, e.Note, e.Velocity)
	case KindPolyphonicPressure:
		return fmt.Sprintf("%s{ch=%d note=%d pressure=%d}", e.Kind, e.Channel, e.Note, e.Pressure)
	case KindController:
		return fmt.Sprintf("%s{ch=%d cc=%d val=%d}", e.Kind, e.Channel, e.Controller, e.Value)
	case KindChannelPressure:
		return fmt.Sprintf("%s{ch=%d pressure=%d}", e.Kind, e.Channel, e.Pressure)
	case KindProgramChange:
		return fmt.Sprintf("%s{ch=%d program=%d}", e.Kind, e.Channel, e.Program)
	case KindPitchBend:
		return fmt.Sprintf("%s{ch=%d lsb=%d msb=%d}", e.Kind, e.Channel, e.LSB, e.MSB)
	case KindPlaybackPosition:
		return fmt.Sprintf("%s{position=%d}", e.Kind, e.Position)
	default:
		return e.Kind.String()
	}
}

func (e RouterEvent) String() string {
	return fmt.Sprintf("[%s] %s", e.Device, e.Event)
}
