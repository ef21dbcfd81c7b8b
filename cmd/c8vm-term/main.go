package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/control"
	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/cpu"
	"github.com/hexaflex/c8vm/devices/host/beeper"
	"github.com/hexaflex/c8vm/devices/host/clock"
	"github.com/hexaflex/c8vm/devices/host/tty"
	"github.com/hexaflex/c8vm/devices/host/wavrec"
)

func main() {
	config := parseArgs()

	out, close := makeLogWriter(config)
	defer close()
	log.SetOutput(out)

	if err := run(config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		close()
		os.Exit(1)
	}
}

// run executes the program until the user quits.
func run(c *Config) error {
	m := cpu.New(c.Machine, func(i *cpu.Instruction) {
		if c.PrintTrace {
			log.Println(i)
		}
	})

	for _, addr := range c.Breakpoints {
		m.SetBreakpoint(addr)
	}

	term := tty.New(os.Stdin, os.Stdout)
	pacer := clock.New(clock.DefaultRate)
	devs := []devices.Device{pacer, term}

	if c.Sound {
		devs = append(devs, beeper.New(c.Tone))
	}

	if c.Wav != "" {
		devs = append(devs, wavrec.New(c.Wav, c.Tone))
	}

	ctl := control.New(m, devs...)
	if err := ctl.Load(c.Program); err != nil {
		return err
	}

	if err := ctl.Startup(); err != nil {
		ctl.Shutdown()
		return err
	}

	log.Println(Version())
	for !term.Quit() {
		if term.Paused() {
			ctl.Update()
		} else if err := ctl.Frame(); err != nil {
			log.Println(err)
			if errors.Cause(err) != cpu.ErrBreakpoint {
				return shutdown(ctl, err)
			}
			term.SetPaused(true)
		}

		pacer.Wait()
	}

	return shutdown(ctl, nil)
}

// shutdown stops all peripherals and returns err, or the shutdown
// error if err is nil.
func shutdown(ctl *control.Controller, err error) error {
	serr := ctl.Shutdown()
	if err != nil {
		return err
	}
	return serr
}

// makeLogWriter creates the log output and a cleanup function for it.
// The terminal is owned by the display, so log output is discarded
// unless a log file is given.
func makeLogWriter(c *Config) (io.Writer, func()) {
	if c.Log == "" {
		return io.Discard, func() {}
	}

	fd, err := os.Create(c.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
