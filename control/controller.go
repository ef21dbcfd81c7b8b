// Package control drives a machine and its peripherals one frame at a time.
package control

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/cpu"
)

// Controller controls the execution of a machine.
type Controller struct {
	machine *cpu.Machine
	devices devices.Map
	start   time.Time
	frames  uint64
	running bool
}

// New creates a new controller for the given machine and peripherals.
func New(machine *cpu.Machine, devs ...devices.Device) *Controller {
	c := &Controller{
		machine: machine,
	}

	for _, dev := range devs {
		c.devices.Connect(dev)
	}

	return c
}

// Machine returns the controlled machine.
func (c *Controller) Machine() *cpu.Machine {
	return c.machine
}

// Running returns true if the machine is currently running.
func (c *Controller) Running() bool {
	return c.running
}

// Frequency returns the current instruction rate in herz.
func (c *Controller) Frequency() float64 {
	if !c.running {
		return 0
	}

	elapsed := time.Since(c.start).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return float64(c.frames) * float64(c.machine.Speed()) / elapsed
}

// ToggleRun starts or stops program execution.
func (c *Controller) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *Controller) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *Controller) Stop() {
	c.setRunning(false)
}

// Frame runs a single frame: it polls the input devices, runs the
// machine and hands the result to all peripherals.
//
// Peripherals are updated even if the machine reports an error, so the
// display shows the state in which execution stopped. Any error stops
// the controller.
func (c *Controller) Frame() error {
	c.frames++

	err := c.machine.Frame(c.devices.Key())
	c.devices.Update(c.machine)

	if err != nil {
		c.setRunning(false)
		return err
	}

	return nil
}

// Update hands the machine state to all peripherals without running it.
// This keeps them current while execution is paused.
func (c *Controller) Update() {
	c.devices.Update(c.machine)
}

// Load loads the given program file and resets the frame rate measurement.
func (c *Controller) Load(file string) error {
	if err := c.machine.LoadFile(file); err != nil {
		return err
	}

	c.setRunning(c.running)
	return nil
}

// Startup initializes all peripherals.
func (c *Controller) Startup() error {
	return errors.Wrapf(c.devices.Startup(), "startup failed")
}

// Shutdown disposes of peripheral resources.
func (c *Controller) Shutdown() error {
	return errors.Wrapf(c.devices.Shutdown(), "shutdown failed")
}

// setRunning determines if the machine is running or is paused.
func (c *Controller) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.frames = 0
}
