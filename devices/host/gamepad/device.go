// Package gamepad maps a glfw gamepad onto the hexadecimal keypad.
package gamepad

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

// Binding assigns a logical key to a gamepad button.
type Binding struct {
	Button glfw.GamepadButton
	Key    keypad.Key
}

// DefaultBindings puts the directional pad on 2/4/6/8, which most
// programs use for movement, and the primary button on 5.
// Earlier entries win when several buttons are held.
var DefaultBindings = []Binding{
	{glfw.ButtonA, keypad.Key5},
	{glfw.ButtonDpadUp, keypad.Key2},
	{glfw.ButtonDpadLeft, keypad.Key4},
	{glfw.ButtonDpadRight, keypad.Key6},
	{glfw.ButtonDpadDown, keypad.Key8},
	{glfw.ButtonB, keypad.Key0},
	{glfw.ButtonX, keypad.KeyA},
	{glfw.ButtonY, keypad.KeyB},
	{glfw.ButtonLeftBumper, keypad.KeyC},
	{glfw.ButtonRightBumper, keypad.KeyD},
	{glfw.ButtonBack, keypad.KeyE},
	{glfw.ButtonStart, keypad.KeyF},
}

// Device defines all internal doodads for the gamepad.
type Device struct {
	bindings    []Binding
	joy         glfw.Joystick
	pressed     [16]bool
	initialized bool
}

var _ devices.Input = &Device{}

// New creates a new device with the given button bindings.
// Nil selects DefaultBindings.
func New(bindings []Binding) *Device {
	if bindings == nil {
		bindings = DefaultBindings
	}

	return &Device{
		bindings: bindings,
	}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0003)
}

// Startup initializes device resources.
// It detects any connected gamepad.
func (d *Device) Startup() error {
	glfw.SetJoystickCallback(d.configure)

	// Check if we have a connected gamepad.
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			d.configure(joy, glfw.Connected)
			break
		}
	}

	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	glfw.SetJoystickCallback(nil)
	d.initialized = false
	return nil
}

// Update polls the gamepad button state.
func (d *Device) Update(devices.System) {
	if !d.initialized {
		return
	}

	state := d.joy.GetGamepadState()
	if state == nil {
		return
	}

	for btn, action := range state.Buttons {
		d.pressed[btn] = action == glfw.Press
	}
}

// Key returns the key bound to the first held button, or keypad.None.
func (d *Device) Key() keypad.Key {
	for _, b := range d.bindings {
		if b.Button >= 0 && int(b.Button) < len(d.pressed) && d.pressed[b.Button] {
			return b.Key
		}
	}
	return keypad.None
}

// configure is called whenever a joystick is connected or disconnected from the system.
func (d *Device) configure(joy glfw.Joystick, event glfw.PeripheralEvent) {
	d.initialized = event == glfw.Connected && joy.IsGamepad()
	d.joy = joy

	if d.initialized {
		log.Println(d.ID(), "gamepad connected:", joy.GetGamepadName())
	} else {
		log.Println(d.ID(), "gamepad disconnected")
	}

	for btn := range d.pressed {
		d.pressed[btn] = false
	}
}
