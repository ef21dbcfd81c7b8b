// Package wavrec records the sound output to a WAV file.
//
// Audio data is buffered in memory in its entirety and written to disk
// when the device shuts down.
package wavrec

import (
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/host/beeper"
)

// BitDepth defines the sample size of the recording.
const BitDepth = 16

// Device records one frame worth of square wave samples per update.
type Device struct {
	filename string
	wave     *beeper.Wave
	fd       *os.File
	data     []int
}

var _ devices.Device = &Device{}

// New creates a recorder writing to the given file.
// The tone is the square wave frequency in herz.
func New(filename string, tone float64) *Device {
	return &Device{
		filename: filename,
		wave:     beeper.NewWave(tone, beeper.Volume),
	}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0006)
}

// Startup creates the output file.
func (d *Device) Startup() error {
	fd, err := os.Create(d.filename)
	if err != nil {
		return errors.Wrapf(err, "wavrec")
	}

	d.fd = fd
	d.data = d.data[:0]
	return nil
}

// Shutdown encodes the recorded samples and closes the file.
func (d *Device) Shutdown() (rerr error) {
	if d.fd == nil {
		return nil
	}

	defer func() {
		if err := d.fd.Close(); err != nil && rerr == nil {
			rerr = errors.Wrapf(err, "wavrec")
		}
		d.fd = nil
	}()

	log.Println(d.ID(), "writing audio to", d.filename)

	enc := wav.NewEncoder(d.fd, beeper.SampleRate, BitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  beeper.SampleRate,
		},
		Data:           d.data,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return errors.Wrapf(err, "wavrec")
	}

	return errors.Wrapf(enc.Close(), "wavrec")
}

// Update records the samples for one frame, gated by the sound predicate.
func (d *Device) Update(sys devices.System) {
	d.wave.SetEnabled(sys.Sound())

	for i := 0; i < beeper.SamplesPerFrame; i++ {
		v := d.wave.Sample() / beeper.Volume
		d.data = append(d.data, int(v*math.MaxInt16))
	}
}

// Samples returns the number of samples recorded so far.
func (d *Device) Samples() int {
	return len(d.data)
}
