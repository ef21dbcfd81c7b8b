package beeper

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestWaveSilentWhenDisabled(t *testing.T) {
	w := NewWave(DefaultTone, Volume)

	p := make([]byte, 1024)
	for i := range p {
		p[i] = 0xff
	}

	n, err := w.Read(p)
	if err != nil {
		t.Fatal(err)
	}

	if n != len(p) {
		t.Fatalf("want: %d have: %d", len(p), n)
	}

	for i, b := range p {
		if b != 0 {
			t.Fatalf("non-zero byte at %d: %02x", i, b)
		}
	}
}

func TestWaveReadWholeSamples(t *testing.T) {
	w := NewWave(DefaultTone, Volume)

	n, _ := w.Read(make([]byte, 7))
	if n != 4 {
		t.Fatalf("want: 4 have: %d", n)
	}
}

func TestWaveFrequency(t *testing.T) {
	w := NewWave(DefaultTone, Volume)
	w.SetEnabled(true)

	p := make([]byte, SampleRate*SampleSize)
	w.Read(p)

	var flips int
	var last float32

	for i := 0; i < len(p); i += SampleSize {
		v := math.Float32frombits(binary.LittleEndian.Uint32(p[i:]))

		if v != Volume && v != -Volume {
			t.Fatalf("sample %d out of range: %v", i/SampleSize, v)
		}

		if i == 0 && v != Volume {
			t.Fatalf("want wave to start high; have %v", v)
		}

		if i > 0 && v != last {
			flips++
		}
		last = v
	}

	// One second of a 440 Hz square wave changes sign 880 times.
	if flips < 2*DefaultTone-2 || flips > 2*DefaultTone+2 {
		t.Fatalf("unexpected number of sign changes: %d", flips)
	}
}

func TestWavePhaseRestarts(t *testing.T) {
	w := NewWave(DefaultTone, Volume)
	w.SetEnabled(true)

	for i := 0; i < 75; i++ {
		w.Sample()
	}

	w.SetEnabled(false)
	if v := w.Sample(); v != 0 {
		t.Fatalf("want silence; have %v", v)
	}

	w.SetEnabled(true)
	if v := w.Sample(); v != Volume {
		t.Fatalf("want: %v have: %v", float32(Volume), v)
	}
}
