// Package driver models the out-of-core MIDI driver boundary: opening
// named OS MIDI ports, subscribing to their input callbacks, and sending
// bytes to their outputs. Actually talking to hardware is out of scope;
// this package defines only the interface the router needs and a Fake
// test double, reducing every port type down to "open a named device,
// get a handle, attach a callback".
package driver

import "fmt"

// InputHandle is a subscribed input port. SetCallback registers the
// function invoked with each raw byte buffer the port receives.
type InputHandle interface {
	SetCallback(fn func([]byte))
}

// OutputHandle is an open output port.
type OutputHandle interface {
	Send(data []byte) error
}

// Driver opens input and output ports by name, resolving aliases to
// physical ports via prefix-match on the device's displayed name.
type Driver interface {
	OpenInput(portName string) (InputHandle, error)
	OpenOutput(portName string) (OutputHandle, error)
}

// ErrPortNotFound is returned when no device name has portName as a
// prefix.
var ErrPortNotFound = fmt.Errorf("driver: port not found")
