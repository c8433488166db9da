/*
Package photo implements the room photo decoder, encoder and the two-level
palette quantizer used to display it.

A room photo is stored as a four byte header holding the width and height as
little-endian 16-bit values, followed by one little-endian 16-bit 5:6:5 RGB
value per pixel, bottom row first.

The display has 256 palette registers; the first 64 hold the fixed sprite
colors so each photo gets its own palette of the remaining 192. The 128 most
frequent colors, taken at 4 bits per channel, are reproduced directly and
every other color shares one of 64 entries taken at 2 bits per channel.
Decoded pixels are stored top row first as palette values 64 to 255.
*/
package photo

import (
	"image"
	"image/color"

	"github.com/bodgit/roomview/sprite"
)

const (
	// MaxWidth is the widest room photo that can be loaded
	MaxWidth = 1024
	// MaxHeight is the tallest room photo that can be loaded
	MaxHeight = 1024

	// NumColors is the number of palette entries chosen per photo
	NumColors = fineColors + coarseColors
	// FirstIndex is the pixel value that addresses palette entry 0
	FirstIndex = sprite.NumColors

	fineColors    = 128
	coarseColors  = 64
	fineBuckets   = 1 << 12
	coarseBuckets = 1 << 6

	headerSize = 4
)

// Palette holds the colors chosen for a single photo. Entries that were never
// chosen are left as the zero color.
type Palette [NumColors]color.RGBA

// Display returns the full 256 entry palette as seen by the display; the
// sprite palette followed by p.
func (p *Palette) Display() color.Palette {
	cp := make(color.Palette, 0, FirstIndex+NumColors)
	cp = append(cp, sprite.Palette...)
	for _, c := range p {
		c.A = 0xff
		cp = append(cp, c)
	}
	return cp
}

// Image is a decoded room photo. It is owned by exactly one room.
type Image struct {
	Width, Height int
	Palette       Palette

	// Pix holds one palette value per pixel, top row first
	Pix []uint8
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return m.Palette.Display()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	v := m.Pix[y*m.Width+x]
	if v < FirstIndex {
		return sprite.Palette[v]
	}
	return m.Palette[v-FirstIndex]
}

// ColorIndexAt returns the palette value at (x, y).
func (m *Image) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Paletted returns a copy of the photo using the full display palette.
func (m *Image) Paletted() *image.Paletted {
	pm := image.NewPaletted(m.Bounds(), m.Palette.Display())
	copy(pm.Pix, m.Pix)
	return pm
}

// Pixels is an undecoded room photo as read from disk.
type Pixels struct {
	Width, Height int

	// Pix holds one color per pixel, top row first
	Pix []Color565
}

// NewPixels returns a black photo of the given size.
func NewPixels(width, height int) *Pixels {
	return &Pixels{
		Width:  width,
		Height: height,
		Pix:    make([]Color565, width*height),
	}
}

// ColorModel implements the image.Image interface.
func (p *Pixels) ColorModel() color.Model {
	return Model
}

// Bounds implements the image.Image interface.
func (p *Pixels) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// At implements the image.Image interface.
func (p *Pixels) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return Color565(0)
	}
	return p.Pix[y*p.Width+x]
}

// Set stores the color at (x, y) converted to 5:6:5.
func (p *Pixels) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return
	}
	p.Pix[y*p.Width+x] = Model.Convert(c).(Color565)
}

// Quantize builds the palette for p and maps every pixel onto it.
func (p *Pixels) Quantize() *Image {
	palette, pix := Quantize(p.Pix)
	return &Image{
		Width:   p.Width,
		Height:  p.Height,
		Palette: *palette,
		Pix:     pix,
	}
}
