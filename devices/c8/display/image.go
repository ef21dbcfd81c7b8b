package display

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Palette used when converting the buffer to an image: index 0 is off, 1 is on.
var Palette = color.Palette{
	color.Gray{Y: 0x00},
	color.Gray{Y: 0xff},
}

// Image returns the buffer as a 1:1 paletted image.
func (b *Buffer) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, Width, Height), Palette)
	copy(img.Pix, b[:])
	return img
}

// WritePNG writes the buffer as a PNG image, with every cell scaled
// up to a scale x scale pixel block.
func (b *Buffer) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		return errors.Errorf("display: invalid scale factor %d", scale)
	}

	src := b.Image()
	dst := image.NewPaletted(image.Rect(0, 0, Width*scale, Height*scale), Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return errors.Wrapf(png.Encode(w, dst), "display: png encoding failed")
}
