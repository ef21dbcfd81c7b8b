package tty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hexaflex/c8vm/devices/c8/display"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

type testSystem struct {
	buf display.Buffer
}

func (s *testSystem) Snapshot() display.Buffer { return s.buf }
func (s *testSystem) Sound() bool              { return false }
func (s *testSystem) Metrics() string          { return "PC: 0x0200" }

func TestRender(t *testing.T) {
	d := display.New()
	d.Toggle(0, 0)
	d.Toggle(1, 1)
	d.Toggle(2, 0)
	d.Toggle(2, 1)

	snap := d.Snapshot()

	var out bytes.Buffer
	if err := Render(&out, &snap, "status"); err != nil {
		t.Fatal(err)
	}

	text := strings.TrimPrefix(out.String(), cursorHome)
	lines := strings.Split(text, "\r\n")

	if len(lines) != Rows+1 {
		t.Fatalf("want: %d lines have: %d", Rows+1, len(lines))
	}

	if !strings.HasPrefix(lines[0], "▀▄█ ") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}

	if lines[1] != strings.Repeat(" ", display.Width) {
		t.Fatalf("unexpected second line: %q", lines[1])
	}

	if lines[Rows] != "status"+clearLine {
		t.Fatalf("unexpected status line: %q", lines[Rows])
	}
}

func TestKeyHold(t *testing.T) {
	d := New(strings.NewReader(""), &bytes.Buffer{})
	sys := &testSystem{}

	if d.Key() != keypad.None {
		t.Fatalf("want no key")
	}

	d.input <- 'W'

	for i := 0; i < HoldFrames; i++ {
		if have := d.Key(); have != keypad.Key5 {
			t.Fatalf("frame %d: want: %v have: %v", i, keypad.Key5, have)
		}
		d.Update(sys)
	}

	if have := d.Key(); have != keypad.None {
		t.Fatalf("want key released; have %v", have)
	}
}

func TestLayout(t *testing.T) {
	seen := make(map[keypad.Key]bool)
	for _, key := range Layout {
		seen[key] = true
	}

	for key := keypad.Key0; key <= keypad.KeyF; key++ {
		if !seen[key] {
			t.Fatalf("key %v is not mapped", key)
		}
	}
}

func TestControlKeys(t *testing.T) {
	d := New(strings.NewReader(""), &bytes.Buffer{})

	d.input <- ' '
	if !d.Paused() {
		t.Fatalf("want paused")
	}

	d.input <- ' '
	if d.Paused() {
		t.Fatalf("want resumed")
	}

	if d.Quit() {
		t.Fatalf("unexpected quit")
	}

	d.input <- keyEscape
	if !d.Quit() {
		t.Fatalf("want quit")
	}
}
