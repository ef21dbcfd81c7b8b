package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexaflex/c8vm/devices/c8/cpu"
	"github.com/hexaflex/c8vm/devices/c8/display"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

var testProgram = []byte{
	0xa0, 0x00, // LD I, 0x000
	0x60, 0x00, // LD V0, 0
	0x61, 0x00, // LD V1, 0
	0xd0, 0x15, // DRW V0, V1, 5
	0x12, 0x08, // JP 0x208
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	rom := filepath.Join(dir, "test.ch8")
	if err := os.WriteFile(rom, testProgram, 0644); err != nil {
		t.Fatal(err)
	}

	c := &Config{
		Program:     rom,
		Machine:     cpu.Config{Speed: 10, Seed: 1},
		Frames:      3,
		Key:         keypad.None,
		Screenshot:  filepath.Join(dir, "out.png"),
		ScaleFactor: 2,
		Wav:         filepath.Join(dir, "out.wav"),
	}

	if err := run(c); err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(c.Screenshot)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}

	r := img.Bounds()
	if r.Dx() != display.Width*2 || r.Dy() != display.Height*2 {
		t.Fatalf("unexpected screenshot size: %v", r)
	}

	if _, err := os.Stat(c.Wav); err != nil {
		t.Fatalf("wav file not written: %v", err)
	}
}

func TestRunFramesStopsAtBreakpoint(t *testing.T) {
	m := cpu.New(cpu.Config{Speed: 10, Seed: 1}, nil)
	m.Load(testProgram)
	m.SetBreakpoint(0x206)

	n, err := runFrames(m, nil, 5)
	if err == nil {
		t.Fatalf("expected a breakpoint error")
	}

	if n != 0 {
		t.Fatalf("want: 0 frames have: %d", n)
	}

	snap := m.Snapshot()
	if snap.Count() != 15 {
		t.Fatalf("want digit drawn before stopping; have %d cells on", snap.Count())
	}
}
