package devices

import "github.com/hexaflex/c8vm/devices/c8/display"

// System defines the machine state visible to peripherals.
type System interface {
	// Snapshot returns a copy of the display contents.
	Snapshot() display.Buffer

	// Sound returns true while the sound timer is running.
	Sound() bool

	// Metrics returns a one-line summary of the machine registers.
	Metrics() string
}
