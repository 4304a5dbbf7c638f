package driver

import (
	"strings"
	"sync"
)

// Fake is an in-memory Driver test double: named ports are pre-registered
// devices whose displayed name the caller chooses, letting tests exercise
// prefix-match lookup the same way a real port enumeration would, and
// letting callers run end-to-end without mocking the OS.
type Fake struct {
	mu      sync.Mutex
	devices []string

	inputs  map[string]*FakeInput
	outputs map[string]*FakeOutput
}

// NewFake constructs a Fake driver with the given displayed device names
// available for OpenInput/OpenOutput prefix-match lookup.
func NewFake(devices ...string) *Fake {
	return &Fake{
		devices: devices,
		inputs:  map[string]*FakeInput{},
		outputs: map[string]*FakeOutput{},
	}
}

func (f *Fake) resolve(portName string) (string, error) {
	for _, d := range f.devices {
		if strings.HasPrefix(d, portName) {
			return d, nil
		}
	}
	return "", ErrPortNotFound
}

func (f *Fake) OpenInput(portName string) (InputHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	name, err := f.resolve(portName)
	if err != nil {
		return nil, err
	}
	in := &FakeInput{}
	f.inputs[name] = in
	return in, nil
}

func (f *Fake) OpenOutput(portName string) (OutputHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	name, err := f.resolve(portName)
	if err != nil {
		return nil, err
	}
	out := &FakeOutput{}
	f.outputs[name] = out
	return out, nil
}

// Deliver invokes the registered callback on the input port matching
// portName's prefix resolution, simulating a raw byte buffer arriving
// from hardware. Tests use this to drive ingress.
func (f *Fake) Deliver(portName string, data []byte) {
	f.mu.Lock()
	name, err := f.resolve(portName)
	var in *FakeInput
	if err == nil {
		in = f.inputs[name]
	}
	f.mu.Unlock()

	if in != nil {
		in.deliver(data)
	}
}

// Sent returns every byte buffer Send has recorded for portName, in
// arrival order. Tests use this to assert egress.
func (f *Fake) Sent(portName string) [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	name, err := f.resolve(portName)
	if err != nil {
		return nil
	}
	out := f.outputs[name]
	if out == nil {
		return nil
	}
	return out.sent()
}

// FakeInput is an in-memory InputHandle.
type FakeInput struct {
	mu sync.Mutex
	cb func([]byte)
}

func (i *FakeInput) SetCallback(fn func([]byte)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cb = fn
}

func (i *FakeInput) deliver(data []byte) {
	i.mu.Lock()
	cb := i.cb
	i.mu.Unlock()
	if cb != nil {
		cb(data)
	}
}

// FakeOutput is an in-memory OutputHandle that records every Send.
type FakeOutput struct {
	mu  sync.Mutex
	buf [][]byte
}

func (o *FakeOutput) Send(data []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	cp := append([]byte(nil), data...)
	o.buf = append(o.buf, cp)
	return nil
}

func (o *FakeOutput) sent() [][]byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([][]byte, len(o.buf))
	copy(out, o.buf)
	return out
}
