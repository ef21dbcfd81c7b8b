// Package screen renders the framebuffer in an OpenGL context.
package screen

import (
	"image/color"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/display"
)

// Device defines all internal doodads for the screen.
//
// All methods must be called from the goroutine which owns the
// OpenGL context.
type Device struct {
	palette     [8]float32          // Off and on colors as RGBA.
	cells       display.Buffer      // Last observed framebuffer.
	pixels      [display.Cells]byte // Texture data: 0 or 0xff per cell.
	shader      uint32
	vao         uint32
	vbo         uint32
	texture     uint32
	dirty       bool
	initialized bool
}

var _ devices.Device = &Device{}

// New creates a new device drawing with the given palette.
// Index 0 is used for cells which are off, index 1 for cells which are on.
func New(palette color.Palette) *Device {
	var d Device
	setPalette(d.palette[:], palette)
	return &d
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0001)
}

// Startup initializes device resources.
func (d *Device) Startup() error {
	var err error

	d.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(d.shader)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	palette := gl.GetUniformLocation(d.shader, glStr("palette"))
	gl.Uniform4fv(palette, 2, &d.palette[0])

	d.texture = makeTexture()
	d.dirty = true
	d.initialized = true
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	if !d.initialized {
		return nil
	}

	d.initialized = false
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.shader)
	return nil
}

// Update copies the machine's framebuffer if it changed since the last frame.
// The texture itself is uploaded by the next Draw.
func (d *Device) Update(sys devices.System) {
	snap := sys.Snapshot()
	if snap == d.cells {
		return
	}

	d.cells = snap
	expand(d.pixels[:], &d.cells)
	d.dirty = true
}

// Draw renders the display contents.
func (d *Device) Draw() {
	if !d.initialized {
		return
	}

	if d.dirty {
		uploadTexture(d.texture, display.Width, display.Height, d.pixels[:])
		d.dirty = false
	}

	gl.UseProgram(d.shader)
	gl.BindVertexArray(d.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// expand converts cells to texture data.
func expand(dst []byte, cells *display.Buffer) {
	for i, v := range cells {
		if v != 0 {
			dst[i] = 0xff
		} else {
			dst[i] = 0
		}
	}
}

// setPalette writes the first two palette colors to dst as normalized RGBA.
func setPalette(dst []float32, palette color.Palette) {
	for i := 0; i < 2 && i < len(palette); i++ {
		r, g, b, a := palette[i].RGBA()
		dst[i*4+0] = float32(r) / 0xffff
		dst[i*4+1] = float32(g) / 0xffff
		dst[i*4+2] = float32(b) / 0xffff
		dst[i*4+3] = float32(a) / 0xffff
	}
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
