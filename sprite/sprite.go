/*
Package sprite implements the object image decoder and encoder.

An object image is stored as a four byte header holding the width and height
as little-endian 16-bit values, followed by one byte per pixel. Each pixel is
a packed 2:2:2 RGB value in the low six bits, addressing one of 64 fixed
sprite colors, or the reserved value Transparent. Rows are stored bottom row
first; in memory they are kept top row first with no padding.
*/
package sprite

import (
	"image"
	"image/color"
)

const (
	// MaxWidth is the widest object image that can be loaded
	MaxWidth = 160
	// MaxHeight is the tallest object image that can be loaded
	MaxHeight = 100

	// NumColors is the size of the fixed sprite palette
	NumColors = 64

	// Transparent is the pixel value that is never painted
	Transparent = 0x40

	headerSize = 4
)

// Color222 is a sprite pixel; 2 bits each of red, green and blue packed as
// 00RRGGBB, or Transparent.
type Color222 uint8

// RGBA implements the color.Color interface.
func (c Color222) RGBA() (r, g, b, a uint32) {
	if c == Transparent {
		return 0, 0, 0, 0
	}
	r = uint32(c>>4&0x3) * 0x5555
	g = uint32(c>>2&0x3) * 0x5555
	b = uint32(c&0x3) * 0x5555
	return r, g, b, 0xffff
}

// Model converts any color to Color222 by truncating each channel to its top
// 2 bits, anything less than half opaque becomes Transparent.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color222); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return Color222(Transparent)
	}
	return Color222(r>>14<<4 | g>>14<<2 | b>>14)
})

// Palette is the fixed sprite palette, index i holds Color222(i).
var Palette = func() color.Palette {
	p := make(color.Palette, NumColors)
	for i := range p {
		r, g, b, _ := Color222(i).RGBA()
		p[i] = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	}
	return p
}()

// Image is a decoded object image. It is shared read-only between every
// placement of the same sprite.
type Image struct {
	Width, Height int

	// Pix holds one Color222 value per pixel, top row first
	Pix []uint8
}

// New returns a fully transparent image of the given size.
func New(width, height int) *Image {
	m := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	for i := range m.Pix {
		m.Pix[i] = Transparent
	}
	return m
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return Model
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return Color222(Transparent)
	}
	return Color222(m.Pix[y*m.Width+x])
}

// ColorIndexAt returns the raw pixel value at (x, y).
func (m *Image) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return Transparent
	}
	return m.Pix[y*m.Width+x]
}

// Set stores the pixel value at (x, y).
func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return
	}
	m.Pix[y*m.Width+x] = uint8(Model.Convert(c).(Color222))
}

// Paletted returns a copy of the image using the sprite palette with an
// extra fully transparent entry at index Transparent.
func (m *Image) Paletted() *image.Paletted {
	p := append(Palette[:NumColors:NumColors], color.RGBA{})
	pm := image.NewPaletted(m.Bounds(), p)
	copy(pm.Pix, m.Pix)
	return pm
}
