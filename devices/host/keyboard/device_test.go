package keyboard

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

type testWindow map[glfw.Key]bool

func (w testWindow) GetKey(key glfw.Key) glfw.Action {
	if w[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestKey(t *testing.T) {
	win := testWindow{}
	d := New(win, VIP)

	if have := d.Key(); have != keypad.None {
		t.Fatalf("want: %v have: %v", keypad.None, have)
	}

	win[glfw.KeyV] = true
	if have := d.Key(); have != keypad.KeyF {
		t.Fatalf("want: %v have: %v", keypad.KeyF, have)
	}

	win[glfw.KeyX] = true
	if have := d.Key(); have != keypad.Key0 {
		t.Fatalf("want: %v have: %v", keypad.Key0, have)
	}
}

func TestNumpad(t *testing.T) {
	d := New(testWindow{glfw.KeyKP7: true}, Numpad)

	if have := d.Key(); have != keypad.Key1 {
		t.Fatalf("want: %v have: %v", keypad.Key1, have)
	}
}

func TestLayouts(t *testing.T) {
	for _, name := range []string{"vip", "numpad"} {
		layout, err := LayoutByName(name)
		if err != nil {
			t.Fatal(err)
		}

		seen := make(map[glfw.Key]bool)
		for key, hk := range layout {
			if hk == 0 || seen[hk] {
				t.Fatalf("%s: key %X has no unique host key", name, key)
			}
			seen[hk] = true
		}
	}

	if _, err := LayoutByName("dvorak"); err == nil {
		t.Fatalf("expected an error for an unknown layout")
	}
}
