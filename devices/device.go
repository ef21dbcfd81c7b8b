package devices

import (
	"log"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

// Device represents a host peripheral: a screen, a speaker, an input
// device and so on. It observes the machine once per frame.
type Device interface {
	// ID yields the manufacturer and serial number for the device.
	ID() ID

	// Startup initializes internal resources.
	Startup() error

	// Shutdown cleans up internal resources.
	Shutdown() error

	// Update is called once per frame, after the machine has
	// executed that frame.
	Update(System)
}

// Input is implemented by devices which supply keypad input.
type Input interface {
	Device

	// Key returns the logical key currently held down, or keypad.None.
	Key() keypad.Key
}

// Map contains a list of registered peripherals.
type Map []Device

// Connect adds the given device to the device map.
// Returns false if the device type is already present in the set.
func (dm *Map) Connect(dev Device) bool {
	if (*dm).Find(dev.ID()) > -1 {
		return false
	}

	*dm = append(*dm, dev)
	return true
}

// Key polls all input devices and returns the first pressed key.
// Returns keypad.None if nothing is pressed.
func (dm Map) Key() keypad.Key {
	for _, dev := range dm {
		in, ok := dev.(Input)
		if !ok {
			continue
		}

		if key := in.Key(); key.Valid() {
			return key
		}
	}
	return keypad.None
}

// Update hands the state of the given system to all devices.
func (dm Map) Update(sys System) {
	for _, dev := range dm {
		dev.Update(sys)
	}
}

// Startup initializes internal resources.
func (dm Map) Startup() error {
	var errorset ErrorSet

	for _, dev := range dm {
		log.Println(dev.ID(), "startup")
		if err := dev.Startup(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	return errorset.Err()
}

// Shutdown cleans up internal resources.
func (dm Map) Shutdown() error {
	var errorset ErrorSet

	for _, dev := range dm {
		log.Println(dev.ID(), "shutdown")
		if err := dev.Shutdown(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	return errorset.Err()
}

// Find returns the index for the device with the given id.
// Returns -1 if it can't be found.
func (dm Map) Find(id ID) int {
	for i, dev := range dm {
		if dev.ID() == id {
			return i
		}
	}
	return -1
}
