// Package transform implements the pipeline stage contract and the
// built-in transform catalog: Filter, Map, Distribute, Arpeggio, Mirror,
// Inspect, Output, and the Wasm stub. Each stage is a stateful value that
// consumes router events and tick events and may emit events immediately
// or schedule delayed ones, generalized from one-shot filtering/remapping
// functions into a single stateful stage interface.
package transform

import (
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// StageKind distinguishes the two inputs a pipeline stage can receive.
type StageKind int

const (
	// KindTick marks a subdivision pulse the stage subscribed to.
	KindTick StageKind = iota
	// KindRouterMessage marks an upstream router event.
	KindRouterMessage
)

// StageEvent is the sum type flowing through a pipeline's merged stage
// streams: either a bare tick or a router event.
type StageEvent struct {
	Kind   StageKind
	Router midi.RouterEvent
}

// Tick builds a tick stage event.
func Tick() StageEvent { return StageEvent{Kind: KindTick} }

// Message builds a router-message stage event.
func Message(e midi.RouterEvent) StageEvent {
	return StageEvent{Kind: KindRouterMessage, Router: e}
}

// Transform is a stateful pipeline stage. Implementations are never
// shared across pipelines: the engine treats each instance as a
// single-producer single-consumer stage.
type Transform interface {
	// TempoSubdiv reports the clock subscription ratio this transform
	// needs, if any. When non-nil, the pipeline subscribes to the clock
	// at this ratio and feeds Tick stage events into OnTick.
	TempoSubdiv() *float64

	// BindScheduler is called once at pipeline construction to give the
	// transform its side-channel for immediate/delayed emission.
	BindScheduler(h scheduler.Handle)

	// OnTick handles a subscribed tick. Returns the primary output, if
	// any. Events emitted in response to a tick (Arpeggio's scheduled
	// notes) are tagged with the "self" pseudo-device, since a tick
	// carries no originating device; a downstream Output stage normally
	// overwrites it before egress.
	OnTick(h scheduler.Handle) *midi.RouterEvent

	// OnMessage handles an upstream router event. Returns the primary
	// output, if any.
	OnMessage(msg midi.RouterEvent, h scheduler.Handle) *midi.RouterEvent
}

// Process dispatches a StageEvent to the appropriate Transform method.
func Process(t Transform, e StageEvent, h scheduler.Handle) *midi.RouterEvent {
	switch e.Kind {
	case KindTick:
		return t.OnTick(h)
	case KindRouterMessage:
		return t.OnMessage(e.Router, h)
	default:
		return nil
	}
}

// Base provides no-op defaults for TempoSubdiv, BindScheduler, and OnTick
// so catalog transforms that don't need them (Filter, Map, Mirror,
// Inspect, Output) need not implement empty stubs themselves.
type Base struct{}

func (Base) TempoSubdiv() *float64                     { return nil }
func (Base) BindScheduler(scheduler.Handle)             {}
func (Base) OnTick(scheduler.Handle) *midi.RouterEvent { return nil }
