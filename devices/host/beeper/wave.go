package beeper

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Audio stream properties.
const (
	SampleRate      = 44100           // Samples per second.
	SampleSize      = 4               // Bytes per sample: mono float32.
	SamplesPerFrame = SampleRate / 60 // Samples generated during one 60 Hz frame.
	Volume          = 0.05            // Square wave amplitude.
	DefaultTone     = 440             // Default tone frequency in herz.
)

// Wave generates a square wave while enabled and silence otherwise.
//
// It implements io.Reader, producing little endian float32 samples. The
// enabled flag may be changed from any goroutine; everything else belongs
// to the reader.
type Wave struct {
	enabled atomic.Bool
	step    float64 // Phase increment per sample.
	phase   float64 // Current phase in [0, 1).
	volume  float32
}

// NewWave creates a disabled wave with the given tone frequency and amplitude.
// A tone <= 0 selects DefaultTone.
func NewWave(tone float64, volume float32) *Wave {
	if tone <= 0 {
		tone = DefaultTone
	}

	return &Wave{
		step:   tone / SampleRate,
		volume: volume,
	}
}

// SetEnabled turns the tone on or off.
func (w *Wave) SetEnabled(v bool) {
	w.enabled.Store(v)
}

// Enabled returns true if the tone is on.
func (w *Wave) Enabled() bool {
	return w.enabled.Load()
}

// Sample returns the next sample.
// The phase restarts whenever the wave is disabled, so every tone
// begins on the positive half of the cycle.
func (w *Wave) Sample() float32 {
	if !w.enabled.Load() {
		w.phase = 0
		return 0
	}

	v := w.volume
	if w.phase >= 0.5 {
		v = -v
	}

	w.phase += w.step
	if w.phase >= 1 {
		w.phase -= 1
	}

	return v
}

// Read fills p with whole samples and returns the number of bytes written.
// It never fails.
func (w *Wave) Read(p []byte) (int, error) {
	n := len(p) / SampleSize * SampleSize

	for i := 0; i < n; i += SampleSize {
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(w.Sample()))
	}

	return n, nil
}
