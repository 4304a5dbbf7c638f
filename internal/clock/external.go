package clock

// External is a clock driven entirely by incoming realtime bytes from a
// configured clock-source device: the router forwards TimingClock as Tick
// and PlaybackPosition as Restart. It has no bpm of its own.
type External struct {
	core    *core
	control chan controlMsg
	stop    chan struct{}
}

// NewExternal starts an external clock at the given ppqn and returns it
// along with a Handle. SetBPM on the handle is a no-op.
func NewExternal(ppqn int) (*External, Handle) {
	ec := &External{
		core:    &core{ppqn: ppqn},
		control: make(chan controlMsg, 16),
		stop:    make(chan struct{}),
	}

	go ec.run()

	handle := Handle{core: ec.core}
	return ec, handle
}

// Tick republishes a base tick to every subscriber.
func (ec *External) Tick() {
	select {
	case ec.control <- msgTick:
	default:
	}
}

// Restart forces every active subscription to emit on the very next Tick.
func (ec *External) Restart() {
	select {
	case ec.control <- msgRestart:
	default:
	}
}

func (ec *External) run() {
	for {
		select {
		case <-ec.stop:
			return
		case msg := <-ec.control:
			ec.core.broadcast(msg)
		}
	}
}

// Stop halts the clock's forwarding goroutine.
func (ec *External) Stop() {
	close(ec.stop)
}
