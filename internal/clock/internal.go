package clock

import "time"

// Internal is a self-timed tempo generator: it owns a ticker and a
// bpm-update channel, and publishes a base tick to every subscriber on
// every tick, but only when at least one subscriber exists.
type Internal struct {
	core *core
	bpm  chan float64
	stop chan struct{}
}

// NewInternal starts an internal clock at the given bpm and ppqn and
// returns it along with a Handle for subscribing to subdivisions and
// adjusting tempo.
func NewInternal(bpm float64, ppqn int) (*Internal, Handle) {
	ic := &Internal{
		core: &core{ppqn: ppqn},
		bpm:  make(chan float64, 1),
		stop: make(chan struct{}),
	}

	go ic.run(bpm)

	handle := Handle{core: ic.core, setBPM: ic.setBPM}
	return ic, handle
}

func (ic *Internal) setBPM(bpm float64) {
	select {
	case ic.bpm <- bpm:
	default:
		select {
		case <-ic.bpm:
		default:
		}
		select {
		case ic.bpm <- bpm:
		default:
		}
	}
}

func (ic *Internal) run(bpm float64) {
	interval := intervalFor(bpm, ic.core.ppqn)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ic.stop:
			return

		case <-ticker.C:
			if ic.core.subscriberCount() > 0 {
				ic.core.broadcast(msgTick)
			}

		case newBPM := <-ic.bpm:
			bpm = newBPM
			ticker.Reset(intervalFor(bpm, ic.core.ppqn))
		}
	}
}

// Stop halts the clock's timer goroutine.
func (ic *Internal) Stop() {
	close(ic.stop)
}
