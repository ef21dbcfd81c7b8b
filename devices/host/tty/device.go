// Package tty implements a terminal based display and keyboard.
package tty

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/display"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

// HoldFrames is the number of frames a key stays down after it was typed.
// Terminals report key presses but no releases, so a release is assumed
// once the hold expires without the key repeating.
const HoldFrames = 8

// Control bytes handled by the device itself.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	keySpace  = ' '
)

// Layout maps typed characters to logical keys, following the
// COSMAC VIP keypad:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var Layout = map[byte]keypad.Key{
	'1': keypad.Key1, '2': keypad.Key2, '3': keypad.Key3, '4': keypad.KeyC,
	'q': keypad.Key4, 'w': keypad.Key5, 'e': keypad.Key6, 'r': keypad.KeyD,
	'a': keypad.Key7, 's': keypad.Key8, 'd': keypad.Key9, 'f': keypad.KeyE,
	'z': keypad.KeyA, 'x': keypad.Key0, 'c': keypad.KeyB, 'v': keypad.KeyF,
}

// Device renders the framebuffer to a terminal and reads keys from it.
type Device struct {
	in     io.Reader   // Key input.
	out    io.Writer   // Frame output.
	input  chan byte   // Bytes read from in.
	state  *term.State // Terminal state before switching to raw mode.
	fd     int         // File descriptor of in, if it is a terminal.
	key    keypad.Key  // Most recently typed key.
	hold   int         // Frames until key is released.
	quit   bool        // Escape or Ctrl-C was typed.
	paused bool        // Space toggles this.
}

var _ devices.Input = &Device{}

// New creates a new device reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Device {
	return &Device{
		in:    in,
		out:   out,
		input: make(chan byte, 64),
		fd:    -1,
		key:   keypad.None,
	}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0007)
}

// Startup switches the terminal to raw mode, if the input is one,
// and starts reading keys.
func (d *Device) Startup() error {
	if f, ok := d.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())

		if err := checkSize(d.out); err != nil {
			return err
		}

		state, err := term.MakeRaw(fd)
		if err != nil {
			return errors.Wrapf(err, "failed to enter raw mode")
		}

		d.fd = fd
		d.state = state
	}

	io.WriteString(d.out, clearAll+hideCursor)
	go d.poll()
	return nil
}

// Shutdown restores the terminal.
// The reader goroutine stays blocked on input until the process exits.
func (d *Device) Shutdown() error {
	io.WriteString(d.out, showCursor+"\r\n")

	if d.state == nil {
		return nil
	}

	err := term.Restore(d.fd, d.state)
	d.state = nil
	return errors.Wrapf(err, "failed to restore terminal")
}

// Update draws the current frame with the machine metrics underneath
// and ages the held key.
func (d *Device) Update(sys devices.System) {
	if d.hold > 0 {
		d.hold--
	}

	snap := sys.Snapshot()
	status := sys.Metrics()
	if d.paused {
		status += " [paused]"
	}

	if err := Render(d.out, &snap, status); err != nil {
		log.Println(d.ID(), err)
	}
}

// Key returns the logical key currently held down, or keypad.None.
func (d *Device) Key() keypad.Key {
	d.drain()

	if d.hold > 0 {
		return d.key
	}
	return keypad.None
}

// Quit returns true once the user asked to exit.
func (d *Device) Quit() bool {
	d.drain()
	return d.quit
}

// Paused returns true while execution is paused.
func (d *Device) Paused() bool {
	d.drain()
	return d.paused
}

// SetPaused pauses or resumes execution.
func (d *Device) SetPaused(v bool) {
	d.paused = v
}

// drain handles all bytes read since the last call.
func (d *Device) drain() {
	for {
		select {
		case b := <-d.input:
			d.press(b)
		default:
			return
		}
	}
}

// press handles a single typed byte.
func (d *Device) press(b byte) {
	switch b {
	case keyCtrlC, keyEscape:
		d.quit = true
		return
	case keySpace:
		d.paused = !d.paused
		return
	}

	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	if key, ok := Layout[b]; ok {
		d.key = key
		d.hold = HoldFrames
	}
}

// poll forwards bytes from the input to the device.
func (d *Device) poll() {
	var buf [16]byte

	for {
		n, err := d.in.Read(buf[:])
		for _, b := range buf[:n] {
			d.input <- b
		}

		if err != nil {
			if err != io.EOF {
				log.Println(d.ID(), err)
			}
			return
		}
	}
}

// checkSize returns an error if out is a terminal too small to hold
// the framebuffer and the status line.
func checkSize(out io.Writer) error {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}

	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return errors.Wrapf(err, "failed to read terminal size")
	}

	if w < display.Width || h < Rows+1 {
		return errors.Errorf("terminal too small: need %dx%d; have %dx%d", display.Width, Rows+1, w, h)
	}

	return nil
}
