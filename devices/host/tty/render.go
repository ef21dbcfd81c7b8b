package tty

import (
	"bufio"
	"io"

	"github.com/hexaflex/c8vm/devices/c8/display"
)

// Rows is the number of text lines needed to show the framebuffer.
// Every line holds two rows of cells.
const Rows = display.Height / 2

// ANSI control sequences.
const (
	cursorHome = "\x1b[H"
	clearLine  = "\x1b[K"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearAll   = "\x1b[2J"
)

// Half block characters indexed by (top | bottom<<1).
var blocks = [4]string{" ", "▀", "▄", "█"}

// Render writes the buffer to w as Rows lines of half block characters,
// followed by the status line. The cursor is moved home first, so each
// call overwrites the previous frame.
//
// Lines end in "\r\n" since the terminal runs in raw mode.
func Render(w io.Writer, buf *display.Buffer, status string) error {
	bw := bufio.NewWriterSize(w, (display.Width*3+8)*(Rows+1))
	bw.WriteString(cursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			var n int
			if buf.Pixel(x, y) {
				n |= 1
			}
			if buf.Pixel(x, y+1) {
				n |= 2
			}
			bw.WriteString(blocks[n])
		}
		bw.WriteString("\r\n")
	}

	bw.WriteString(status)
	bw.WriteString(clearLine)
	return bw.Flush()
}
