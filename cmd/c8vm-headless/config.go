package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexaflex/c8vm/devices/c8/cpu"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
	"github.com/hexaflex/c8vm/devices/host/beeper"
)

// Config defines program configuration.
type Config struct {
	Program     string     // Path to the program file to load.
	Machine     cpu.Config // Machine configuration.
	Breakpoints []uint16   // Addresses at which execution stops.
	Frames      int        // Number of frames to run.
	Key         keypad.Key // Key held down during every frame.
	Screenshot  string     // Optional PNG file to write the final display to.
	ScaleFactor int        // Pixel scale factor for the screenshot.
	Wav         string     // Optional file to record sound output to.
	Tone        float64    // Beeper frequency in herz.
	PrintTrace  bool       // Print instruction trace data?
	PrintScreen bool       // Print the final display contents as text?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Machine = cpu.DefaultConfig()
	c.Frames = 60
	c.Key = keypad.None
	c.ScaleFactor = 10
	c.Tone = beeper.DefaultTone

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Frames, "frames", c.Frames, "Number of frames to run.")
	flag.IntVar(&c.Machine.Speed, "speed", c.Machine.Speed, "Number of instructions executed per frame.")
	flag.Int64Var(&c.Machine.Seed, "seed", c.Machine.Seed, "Random number seed. 0 seeds from the clock.")
	flag.StringVar(&c.Screenshot, "screenshot", c.Screenshot, "Write the final display contents to the given PNG file.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the screenshot.")
	flag.StringVar(&c.Wav, "wav", c.Wav, "Record sound output to the given WAV file.")
	flag.Float64Var(&c.Tone, "tone", c.Tone, "Beeper frequency in herz.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")
	flag.BoolVar(&c.PrintScreen, "print", c.PrintScreen, "Print the final display contents as text.")
	jumpMode := flag.String("jump-mode", c.Machine.JumpMode.String(), "Behaviour of Bnnn: additive or absolute.")
	breakpoints := flag.String("break", "", "Comma-separated list of breakpoint addresses. E.g.: 0x2a0,0x300")
	key := flag.String("key", "", "Hexadecimal key held down during every frame.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	if c.Machine.JumpMode, err = cpu.ParseJumpMode(*jumpMode); err != nil {
		exit(err)
	}

	if c.Breakpoints, err = cpu.ParseAddresses(*breakpoints); err != nil {
		exit(err)
	}

	if len(*key) > 0 {
		var ok bool
		if c.Key, ok = keypad.ParseKey(rune((*key)[0])); !ok || len(*key) > 1 {
			exit(fmt.Errorf("invalid key %q", *key))
		}
	}

	c.Program = flag.Arg(0)
	return &c
}

// exit prints err and ends the program.
func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
