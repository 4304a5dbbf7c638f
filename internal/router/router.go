// Package router wires the driver, clock, and pipelines together: it
// fans ingress bytes out to every pipeline (short-circuiting realtime
// bytes from the configured clock source into the clock subsystem
// instead), and collects pipeline egress back out to the driver.
package router

import (
	"fmt"
	"sync"

	"github.com/moustacheful/midori/internal/clock"
	"github.com/moustacheful/midori/internal/config"
	"github.com/moustacheful/midori/internal/driver"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/midilog"
	"github.com/moustacheful/midori/internal/pipeline"
	"github.com/moustacheful/midori/internal/queue"
)

// Router holds the physical input/output device handles keyed by alias,
// the configured pipelines, and the clock subsystem they share.
type Router struct {
	inputs  map[string]driver.InputHandle
	outputs map[string]driver.OutputHandle

	pipelines []*pipeline.Pipeline

	internalClock    *clock.Internal
	externalClock    *clock.External
	clockSourceAlias string // set only when the clock is external

	rawIngress chan midi.RouterEvent
}

// New opens every configured device, starts the clock, and constructs
// every pipeline. cfg must already have passed Validate.
func New(drv driver.Driver, cfg *config.Config) (*Router, error) {
	r := &Router{
		inputs:     map[string]driver.InputHandle{},
		outputs:    map[string]driver.OutputHandle{},
		rawIngress: make(chan midi.RouterEvent),
	}

	for alias, portName := range cfg.InputDevices {
		in, err := drv.OpenInput(portName)
		if err != nil {
			return nil, fmt.Errorf("router: opening input %q (%q): %w", alias, portName, err)
		}
		r.inputs[alias] = in
	}

	for alias, portName := range cfg.OutputDevices {
		out, err := drv.OpenOutput(portName)
		if err != nil {
			return nil, fmt.Errorf("router: opening output %q (%q): %w", alias, portName, err)
		}
		r.outputs[alias] = out
	}

	var clkHandle clock.Handle
	if cfg.Clock.From != "" {
		ext, h := clock.NewExternal(*cfg.Clock.PPQN)
		r.externalClock = ext
		r.clockSourceAlias = cfg.Clock.From
		clkHandle = h
	} else {
		ic, h := clock.NewInternal(float64(*cfg.Clock.BPM), *cfg.Clock.PPQN)
		r.internalClock = ic
		clkHandle = h
	}

	for _, pc := range cfg.Pipelines {
		chain, err := config.BuildChain(pc.Transforms)
		if err != nil {
			return nil, fmt.Errorf("router: pipeline %q: %w", pc.Name, err)
		}
		r.pipelines = append(r.pipelines, pipeline.New(pc.Name, chain, clkHandle))
	}

	return r, nil
}

// Run subscribes every input device's callback, spawns the ingress
// fan-out task and one egress-drain task per pipeline, then blocks
// draining the combined egress queue and sending bytes to the driver.
// It runs until process exit; there is no graceful shutdown in the core.
func (r *Router) Run() error {
	for alias, in := range r.inputs {
		alias := alias
		in.SetCallback(func(buf []byte) {
			event, _, err := midi.Parse(buf)
			if err != nil {
				midilog.L.Warn("decode error on ingress", "device", alias, "error", err)
				return
			}
			r.rawIngress <- event.Wrap(alias)
		})
	}

	go r.fanOut()

	egress := queue.Unbounded(r.mergeEgress())
	for e := range egress {
		if err := r.send(e); err != nil {
			midilog.L.Error("egress send failed", "device", e.Device, "error", err)
		}
	}
	return nil
}

func (r *Router) fanOut() {
	for ev := range queue.Unbounded(r.rawIngress) {
		if ev.Event.IsRealtime() && r.externalClock != nil && ev.Device == r.clockSourceAlias {
			switch ev.Event.Kind {
			case midi.KindTimingClock:
				r.externalClock.Tick()
			case midi.KindPlaybackPosition:
				r.externalClock.Restart()
			}
			continue
		}

		for _, p := range r.pipelines {
			p.Input <- ev
		}
	}
}

func (r *Router) mergeEgress() <-chan midi.RouterEvent {
	out := make(chan midi.RouterEvent)
	var wg sync.WaitGroup
	wg.Add(len(r.pipelines))
	for _, p := range r.pipelines {
		go func(p *pipeline.Pipeline) {
			defer wg.Done()
			for e := range p.Output {
				out <- e
			}
		}(p)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (r *Router) send(e midi.RouterEvent) error {
	out, ok := r.outputs[e.Device]
	if !ok {
		midilog.Fatal("unknown output device alias", "device", e.Device)
		return fmt.Errorf("router: unknown output device alias %q", e.Device) // unreachable: Fatal exits
	}

	bytes, err := midi.Serialise(e.Event)
	if err != nil {
		midilog.L.Warn("encode error on egress", "device", e.Device, "error", err)
		return nil
	}

	return out.Send(bytes)
}
