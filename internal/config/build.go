package config

import (
	"fmt"

	"github.com/moustacheful/midori/internal/cycle"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/transform"
)

var kindNames = map[string]midi.Kind{
	"NoteOff":             midi.KindNoteOff,
	"NoteOn":              midi.KindNoteOn,
	"PolyphonicPressure":  midi.KindPolyphonicPressure,
	"Controller":          midi.KindController,
	"ChannelPressure":     midi.KindChannelPressure,
	"ProgramChange":       midi.KindProgramChange,
	"PitchBend":           midi.KindPitchBend,
	"TimingClock":         midi.KindTimingClock,
	"PlaybackStart":       midi.KindPlaybackStart,
	"PlaybackStop":        midi.KindPlaybackStop,
	"PlaybackContinue":    midi.KindPlaybackContinue,
	"PlaybackPosition":    midi.KindPlaybackPosition,
}

var directionNames = map[string]cycle.Direction{
	"":         cycle.Forward,
	"Forward":  cycle.Forward,
	"Backward": cycle.Backward,
	"PingPong": cycle.PingPong,
}

// Build constructs the transform.Transform named by tc.Type. Validate
// should be called first so this never encounters a malformed entry.
func Build(tc TransformConfig) (transform.Transform, error) {
	switch tc.Type {
	case "Filter":
		kinds := make([]midi.Kind, 0, len(tc.Kinds))
		for _, name := range tc.Kinds {
			k, ok := kindNames[name]
			if !ok {
				return nil, fmt.Errorf("Filter: unknown kind %q", name)
			}
			kinds = append(kinds, k)
		}
		return &transform.Filter{Devices: tc.Devices, Channels: tc.Channels, Kinds: kinds}, nil

	case "Map":
		return &transform.Map{Channels: tc.ChannelMap, Controllers: tc.ControllerMap}, nil

	case "Distribute":
		return &transform.Distribute{Between: tc.Between}, nil

	case "Arpeggio":
		return &transform.Arpeggio{
			Subdivision:    tc.Subdivision,
			Direction:      directionNames[tc.Direction],
			Repeat:         tc.Repeat,
			NoteDurationMs: tc.NoteDurationMs,
		}, nil

	case "Mirror":
		return &transform.Mirror{Channels: tc.Channels}, nil

	case "Inspect":
		return &transform.Inspect{TimestampFormat: tc.TimestampFormat}, nil

	case "Output":
		return &transform.Output{Device: tc.Device}, nil

	case "Wasm":
		return &transform.Wasm{ModulePath: tc.ModulePath}, nil

	default:
		return nil, fmt.Errorf("unknown transform type %q", tc.Type)
	}
}

// BuildChain builds every transform in a pipeline's configured order.
func BuildChain(tcs []TransformConfig) ([]transform.Transform, error) {
	chain := make([]transform.Transform, 0, len(tcs))
	for _, tc := range tcs {
		t, err := Build(tc)
		if err != nil {
			return nil, err
		}
		chain = append(chain, t)
	}
	return chain, nil
}
