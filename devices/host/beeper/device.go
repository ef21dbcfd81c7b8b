// Package beeper implements the audio output for the sound timer.
package beeper

import (
	"github.com/ebitengine/oto/v3"
	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices"
)

// Device plays a square wave on the host audio output while the
// machine's sound timer is running.
type Device struct {
	wave   *Wave
	ctx    *oto.Context
	player *oto.Player
}

var _ devices.Device = &Device{}

// New creates a new device playing the given tone frequency in herz.
func New(tone float64) *Device {
	return &Device{
		wave: NewWave(tone, Volume),
	}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0004)
}

// Startup opens the host audio output and starts streaming.
// The stream produces silence until the sound timer starts.
func (d *Device) Startup() error {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return errors.Wrapf(err, "failed to open audio output")
	}
	<-ready

	d.ctx = ctx
	d.player = ctx.NewPlayer(d.wave)
	d.player.Play()
	return nil
}

// Shutdown stops the audio stream.
func (d *Device) Shutdown() error {
	d.wave.SetEnabled(false)

	if d.player == nil {
		return nil
	}

	err := d.player.Close()
	d.player = nil
	return err
}

// Update gates the tone with the machine's sound predicate.
func (d *Device) Update(sys devices.System) {
	d.wave.SetEnabled(sys.Sound())
}
