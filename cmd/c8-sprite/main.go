package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// These define the dimensions of a single sprite. Sprites are always
// one byte wide; DRW accepts 1 to 15 rows.
const (
	SpriteWidth     = 8
	MaxSpriteHeight = 15
)

func main() {
	config := parseArgs()
	img := loadImage(config)

	out, close := makeWriter(config)
	defer close()

	if err := translate(out, img, config.Height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		close()
		os.Exit(1)
	}
}

// translate reads sprites of the given height from the image, left to
// right and top to bottom, and writes them to the output as byte
// directives. Each row is annotated with its bit pattern.
//
// Pixels brighter than 50% gray are on.
func translate(out io.Writer, img image.Image, height int) error {
	bw := bufio.NewWriter(out)

	r := img.Bounds()
	w := r.Dx() / SpriteWidth
	h := r.Dy() / height

	fmt.Fprintf(bw, "; %d sprites, %d bytes each\n", w*h, height)

	pattern := make([]byte, SpriteWidth)

	for y := 0; y < h; y++ {
		sy := r.Min.Y + y*height

		for x := 0; x < w; x++ {
			sx := r.Min.X + x*SpriteWidth

			fmt.Fprintf(bw, "\n; sprite %d at %d,%d\n", y*w+x, sx-r.Min.X, sy-r.Min.Y)

			for py := sy; py < sy+height; py++ {
				var row byte

				for px := sx; px < sx+SpriteWidth; px++ {
					bit := px - sx
					if isOn(img.At(px, py)) {
						row |= 0x80 >> uint(bit)
						pattern[bit] = '#'
					} else {
						pattern[bit] = '.'
					}
				}

				fmt.Fprintf(bw, "DB   0x%02X ; %s\n", row, pattern)
			}
		}
	}

	return bw.Flush()
}

// isOn returns true if the given color counts as a lit pixel.
func isOn(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	_, _, _, a := c.RGBA()
	return a >= 0x8000 && g.Y >= 0x80
}

// loadImage loads an image from the input file.
func loadImage(c *Config) image.Image {
	fd, err := os.Open(c.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := img.Bounds()
	if r.Dx() < SpriteWidth || r.Dy() < c.Height {
		fmt.Fprintf(os.Stderr, "source image is too small; expected at least %d x %d pixels\n", SpriteWidth, c.Height)
		os.Exit(1)
	}

	return img
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func()) {
	if c.Output == "" {
		return os.Stdout, func() {}
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
