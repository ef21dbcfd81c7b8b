// Package keyboard maps the host keyboard onto the hexadecimal keypad.
package keyboard

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

// Layout lists the host key for each logical key, indexed by keypad.Key.
type Layout [keypad.KeyF + 1]glfw.Key

// VIP arranges the keys like the COSMAC VIP keypad:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var VIP = Layout{
	keypad.Key0: glfw.KeyX,
	keypad.Key1: glfw.Key1,
	keypad.Key2: glfw.Key2,
	keypad.Key3: glfw.Key3,
	keypad.Key4: glfw.KeyQ,
	keypad.Key5: glfw.KeyW,
	keypad.Key6: glfw.KeyE,
	keypad.Key7: glfw.KeyA,
	keypad.Key8: glfw.KeyS,
	keypad.Key9: glfw.KeyD,
	keypad.KeyA: glfw.KeyZ,
	keypad.KeyB: glfw.KeyC,
	keypad.KeyC: glfw.Key4,
	keypad.KeyD: glfw.KeyR,
	keypad.KeyE: glfw.KeyF,
	keypad.KeyF: glfw.KeyV,
}

// Numpad puts the digits on the numeric keypad, laid out like a phone
// keypad flipped upside down, and A-F on Q, W, E, R, D and F.
var Numpad = Layout{
	keypad.Key0: glfw.KeyKP0,
	keypad.Key1: glfw.KeyKP7,
	keypad.Key2: glfw.KeyKP8,
	keypad.Key3: glfw.KeyKP9,
	keypad.Key4: glfw.KeyKP4,
	keypad.Key5: glfw.KeyKP5,
	keypad.Key6: glfw.KeyKP6,
	keypad.Key7: glfw.KeyKP1,
	keypad.Key8: glfw.KeyKP2,
	keypad.Key9: glfw.KeyKP3,
	keypad.KeyA: glfw.KeyQ,
	keypad.KeyB: glfw.KeyW,
	keypad.KeyC: glfw.KeyE,
	keypad.KeyD: glfw.KeyR,
	keypad.KeyE: glfw.KeyD,
	keypad.KeyF: glfw.KeyF,
}

// LayoutByName returns the layout with the given name: "vip" or "numpad".
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "vip":
		return VIP, nil
	case "numpad":
		return Numpad, nil
	}
	return Layout{}, errors.Errorf("unknown keyboard layout %q", name)
}

// KeyState reports whether a host key is held down.
// It is satisfied by *glfw.Window.
type KeyState interface {
	GetKey(key glfw.Key) glfw.Action
}

// Device defines all internal doodads for the keyboard.
type Device struct {
	window KeyState
	layout Layout
}

var _ devices.Input = &Device{}

// New creates a device polling the given window with the given layout.
func New(window KeyState, layout Layout) *Device {
	return &Device{
		window: window,
		layout: layout,
	}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0002)
}

// Startup initializes device resources.
func (d *Device) Startup() error { return nil }

// Shutdown clears up device resources.
func (d *Device) Shutdown() error { return nil }

// Update implements devices.Device. Keys are polled on demand.
func (d *Device) Update(devices.System) {}

// Key returns the lowest logical key whose host key is held down,
// or keypad.None.
func (d *Device) Key() keypad.Key {
	for key, hk := range d.layout {
		if d.window.GetKey(hk) == glfw.Press {
			return keypad.Key(key)
		}
	}
	return keypad.None
}
