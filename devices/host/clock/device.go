// Package clock implements the frame pacer which drives the machine
// at a fixed frame rate.
package clock

import (
	"time"

	"github.com/hexaflex/c8vm/devices"
)

// DefaultRate is the frame rate at which the timers run.
const DefaultRate = 60

// Device defines all internal doodads for the clock.
type Device struct {
	interval time.Duration // Time between two frames.
	ticker   *time.Ticker  // Frame ticker.
	start    time.Time     // Startup time or time of the last Reset.
	frames   uint64        // Frames observed since start.
}

var _ devices.Device = &Device{}

// New creates a clock ticking at the given number of frames per second.
// A rate <= 0 selects DefaultRate.
func New(rate int) *Device {
	if rate <= 0 {
		rate = DefaultRate
	}

	return &Device{
		interval: time.Second / time.Duration(rate),
	}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0005)
}

// Startup starts the frame ticker.
func (d *Device) Startup() error {
	d.ticker = time.NewTicker(d.interval)
	d.Reset()
	return nil
}

// Shutdown stops the frame ticker.
func (d *Device) Shutdown() error {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
	return nil
}

// Update counts a completed frame.
func (d *Device) Update(devices.System) {
	d.frames++
}

// Wait blocks until the next frame is due.
// Ticks missed by a slow frame are dropped rather than queued.
func (d *Device) Wait() {
	if d.ticker != nil {
		<-d.ticker.C
	}
}

// Interval returns the time between two frames.
func (d *Device) Interval() time.Duration {
	return d.interval
}

// Frames returns the number of frames observed since the last Reset.
func (d *Device) Frames() uint64 {
	return d.frames
}

// FPS returns the measured frame rate since the last Reset.
func (d *Device) FPS() float64 {
	elapsed := time.Since(d.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(d.frames) / elapsed
}

// Reset restarts the frame rate measurement.
func (d *Device) Reset() {
	d.start = time.Now()
	d.frames = 0
}
