package gamepad

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

func TestKey(t *testing.T) {
	d := New(nil)

	if have := d.Key(); have != keypad.None {
		t.Fatalf("want: %v have: %v", keypad.None, have)
	}

	d.pressed[glfw.ButtonDpadLeft] = true
	if have := d.Key(); have != keypad.Key4 {
		t.Fatalf("want: %v have: %v", keypad.Key4, have)
	}

	// The primary button takes precedence over the directional pad.
	d.pressed[glfw.ButtonA] = true
	if have := d.Key(); have != keypad.Key5 {
		t.Fatalf("want: %v have: %v", keypad.Key5, have)
	}
}

func TestBindingsUnique(t *testing.T) {
	seen := make(map[glfw.GamepadButton]bool)

	for _, b := range DefaultBindings {
		if seen[b.Button] {
			t.Fatalf("button %d bound twice", b.Button)
		}
		seen[b.Button] = true

		if !b.Key.Valid() {
			t.Fatalf("button %d bound to invalid key %v", b.Button, b.Key)
		}
	}
}
