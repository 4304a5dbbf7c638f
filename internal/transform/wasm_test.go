package transform

import (
	"testing"

	"github.com/moustacheful/midori/internal/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasm_PassesThroughUnchanged(t *testing.T) {
	w := &Wasm{ModulePath: "noop.wasm"}
	h := noopHandle()

	msg := midi.Controller(0, 1, 1).Wrap("a")
	out := w.OnMessage(msg, h)
	require.NotNil(t, out)
	assert.Equal(t, msg, *out)
}
