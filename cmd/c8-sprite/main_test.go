package main

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/hexaflex/c8vm/devices/c8/cpu"
	"github.com/hexaflex/c8vm/devices/c8/display"
)

func TestTranslate(t *testing.T) {
	// Render the font glyph for 0 through the machine and convert it back.
	m := cpu.New(cpu.Config{Seed: 1}, nil)
	m.Load([]byte{0xa0, 0x00, 0xd0, 0x05}) // LD I, 0x000; DRW V0, V0, 5
	m.Step()
	m.Step()

	snap := m.Snapshot()
	img := snap.Image().SubImage(image.Rect(0, 0, 16, 5))

	var out bytes.Buffer
	if err := translate(&out, img, 5); err != nil {
		t.Fatal(err)
	}

	have := out.String()
	want := []string{
		"; 2 sprites, 5 bytes each",
		"; sprite 0 at 0,0",
		"DB   0xF0 ; ####....",
		"DB   0x90 ; #..#....",
		"; sprite 1 at 8,0",
		"DB   0x00 ; ........",
	}

	for _, w := range want {
		if !strings.Contains(have, w) {
			t.Fatalf("missing %q in output:\n%s", w, have)
		}
	}

	if n := strings.Count(have, "DB "); n != 10 {
		t.Fatalf("want: 10 rows have: %d", n)
	}
}

func TestIsOn(t *testing.T) {
	if !isOn(display.Palette[1]) || isOn(display.Palette[0]) {
		t.Fatalf("unexpected palette classification")
	}

	if isOn(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}) {
		t.Fatalf("want transparent pixels off")
	}
}
