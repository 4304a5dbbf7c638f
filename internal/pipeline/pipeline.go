// Package pipeline composes an ordered list of transforms into a single
// merged stream: router events flow from stage to stage, each stage's own
// subscribed tick stream and scheduler output are folded in alongside its
// upstream, exactly as a lazy stream fold, the same fan-out/fan-in shape
// used to merge several channels' worth of independently-produced data
// into one shared processing path.
package pipeline

import (
	"sync"

	"github.com/moustacheful/midori/internal/clock"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/queue"
	"github.com/moustacheful/midori/internal/scheduler"
	"github.com/moustacheful/midori/internal/transform"
)

// Pipeline owns a name, an input queue (producer: the router), an output
// queue (consumer: the router), and the transform chain that connects
// them. Callers must pass a non-empty Transforms list — an empty list is
// a configuration error caught by internal/config.Validate before a
// Pipeline is ever constructed.
type Pipeline struct {
	Name string

	// Input is the pipeline's unbounded ingress: the router sends every
	// broadcast event here.
	Input chan<- midi.RouterEvent

	// Output is the pipeline's composed egress stream, consumed by the
	// router's per-pipeline drain task.
	Output <-chan midi.RouterEvent
}

// New constructs a Pipeline from an ordered transform chain and a clock
// handle used to satisfy any stage's TempoSubdiv subscription.
func New(name string, transforms []transform.Transform, clk clock.Handle) *Pipeline {
	rawIn := make(chan midi.RouterEvent)
	var output <-chan midi.RouterEvent = queue.Unbounded(rawIn)

	for _, t := range transforms {
		output = runStage(t, output, clk)
	}

	return &Pipeline{Name: name, Input: rawIn, Output: output}
}

// runStage wires one transform into the fold: it merges the upstream
// router stream with the transform's own tick subscription (if any),
// feeds the merge through transform.Process, and merges the transform's
// primary output with its scheduler's side-channel output.
func runStage(t transform.Transform, upstream <-chan midi.RouterEvent, clk clock.Handle) <-chan midi.RouterEvent {
	sources := []<-chan transform.StageEvent{routerToStage(upstream)}

	if ratio := t.TempoSubdiv(); ratio != nil {
		sources = append(sources, ticksToStage(clk.Subscribe(*ratio)))
	}

	merged := mergeStage(sources...)

	sch, handle := scheduler.New()
	t.BindScheduler(handle)

	primary := make(chan midi.RouterEvent)
	go func() {
		defer close(primary)
		for se := range merged {
			if out := transform.Process(t, se, handle); out != nil {
				primary <- *out
			}
		}
		sch.Close()
	}()

	return mergeRouter(primary, sch.Stream)
}

func routerToStage(in <-chan midi.RouterEvent) <-chan transform.StageEvent {
	out := make(chan transform.StageEvent)
	go func() {
		defer close(out)
		for e := range in {
			out <- transform.Message(e)
		}
	}()
	return out
}

func ticksToStage(ticks <-chan struct{}) <-chan transform.StageEvent {
	out := make(chan transform.StageEvent)
	go func() {
		defer close(out)
		for range ticks {
			out <- transform.Tick()
		}
	}()
	return out
}

func mergeStage(chans ...<-chan transform.StageEvent) <-chan transform.StageEvent {
	out := make(chan transform.StageEvent)
	var wg sync.WaitGroup
	wg.Add(len(chans))
	for _, c := range chans {
		go func(c <-chan transform.StageEvent) {
			defer wg.Done()
			for v := range c {
				out <- v
			}
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func mergeRouter(chans ...<-chan midi.RouterEvent) <-chan midi.RouterEvent {
	out := make(chan midi.RouterEvent)
	var wg sync.WaitGroup
	wg.Add(len(chans))
	for _, c := range chans {
		go func(c <-chan midi.RouterEvent) {
			defer wg.Done()
			for v := range c {
				out <- v
			}
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
