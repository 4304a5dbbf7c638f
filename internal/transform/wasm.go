package transform

import (
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Wasm is the sandboxed-script transform stub. Hosting a foreign bytecode
// module is out of core scope; this type exists only so the transform
// catalog's tag set (Filter|Arpeggio|Map|Distribute|Mirror|Inspect|
// Output|Wasm) is complete and a pipeline referencing a Wasm stage still
// satisfies the transform contract. It passes every message through
// unchanged.
type Wasm struct {
	Base

	ModulePath string
}

func (w *Wasm) OnMessage(msg midi.RouterEvent, _ scheduler.Handle) *midi.RouterEvent {
	return &msg
}
