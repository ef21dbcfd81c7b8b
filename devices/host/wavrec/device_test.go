package wavrec

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/hexaflex/c8vm/devices/c8/display"
	"github.com/hexaflex/c8vm/devices/host/beeper"
)

type testSystem struct {
	sound bool
}

func (s *testSystem) Snapshot() display.Buffer { return display.Buffer{} }
func (s *testSystem) Sound() bool              { return s.sound }
func (s *testSystem) Metrics() string          { return "" }

func TestRecord(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.wav")
	d := New(file, beeper.DefaultTone)

	if err := d.Startup(); err != nil {
		t.Fatal(err)
	}

	sys := &testSystem{sound: true}
	d.Update(sys)
	d.Update(sys)
	sys.sound = false
	d.Update(sys)

	if d.Samples() != 3*beeper.SamplesPerFrame {
		t.Fatalf("want: %d have: %d", 3*beeper.SamplesPerFrame, d.Samples())
	}

	if err := d.Shutdown(); err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	dec := wav.NewDecoder(fd)
	if !dec.IsValidFile() {
		t.Fatalf("invalid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}

	if dec.SampleRate != beeper.SampleRate || dec.BitDepth != BitDepth || dec.NumChans != 1 {
		t.Fatalf("unexpected format: %d Hz, %d bits, %d channels", dec.SampleRate, dec.BitDepth, dec.NumChans)
	}

	if len(buf.Data) != 3*beeper.SamplesPerFrame {
		t.Fatalf("want: %d have: %d", 3*beeper.SamplesPerFrame, len(buf.Data))
	}

	if buf.Data[0] != math.MaxInt16 {
		t.Fatalf("want tone to start high; have %d", buf.Data[0])
	}

	for i, v := range buf.Data[2*beeper.SamplesPerFrame:] {
		if v != 0 {
			t.Fatalf("want silence in the last frame; have %d at %d", v, i)
		}
	}
}

func TestStartupFails(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), "missing", "out.wav"), 0)

	if err := d.Startup(); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}

	if err := d.Shutdown(); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}
