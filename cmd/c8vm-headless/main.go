package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/cpu"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
	"github.com/hexaflex/c8vm/devices/host/wavrec"
)

func main() {
	config := parseArgs()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

// run executes the configured number of frames as fast as possible and
// writes the requested output.
func run(c *Config) error {
	m := cpu.New(c.Machine, func(i *cpu.Instruction) {
		if c.PrintTrace {
			fmt.Println(i)
		}
	})

	for _, addr := range c.Breakpoints {
		m.SetBreakpoint(addr)
	}

	if err := m.LoadFile(c.Program); err != nil {
		return err
	}

	var devs devices.Map
	devs.Connect(holdKey(c.Key))

	if c.Wav != "" {
		devs.Connect(wavrec.New(c.Wav, c.Tone))
	}

	if err := devs.Startup(); err != nil {
		return err
	}

	frames, err := runFrames(m, devs, c.Frames)
	if serr := devs.Shutdown(); err == nil {
		err = serr
	}

	fmt.Printf("frames: %d\n%s\n", frames, m.Metrics())

	if c.PrintScreen {
		snap := m.Snapshot()
		fmt.Print(snap.String())
	}

	if c.Screenshot != "" {
		if serr := writeScreenshot(m, c.Screenshot, c.ScaleFactor); err == nil {
			err = serr
		}
	}

	return err
}

// runFrames runs up to n frames and returns the number of frames completed.
// It stops at the first machine error, which includes breakpoints.
func runFrames(m *cpu.Machine, devs devices.Map, n int) (int, error) {
	for i := 0; i < n; i++ {
		err := m.Frame(devs.Key())
		devs.Update(m)

		if err != nil {
			return i, err
		}
	}
	return n, nil
}

// writeScreenshot writes the machine's display to the given PNG file.
func writeScreenshot(m *cpu.Machine, file string, scale int) error {
	fd, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "screenshot")
	}

	snap := m.Snapshot()
	err = snap.WritePNG(fd, scale)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}

	return errors.Wrapf(err, "screenshot")
}

// holdKey is an input device which holds a single key down.
type holdKey keypad.Key

func (k holdKey) ID() devices.ID        { return devices.NewID(devices.Manufacturer, 0x0008) }
func (k holdKey) Startup() error        { return nil }
func (k holdKey) Shutdown() error       { return nil }
func (k holdKey) Update(devices.System) {}
func (k holdKey) Key() keypad.Key       { return keypad.Key(k) }
