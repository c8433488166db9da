package render

import (
	"image"
	"image/color"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/sprite"
)

// Framebuffer is an in-memory indexed display showing a window onto the
// map. It implements Display.
type Framebuffer struct {
	width, height int

	// Map coordinate of the top left pixel
	x, y  int
	drawn bool

	pix     []uint8
	palette color.Palette

	// Number of times SetPalette has been called
	published int

	col []byte
}

// NewFramebuffer returns a black framebuffer of the given size.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadSize
	}
	p := make(color.Palette, 0, photo.FirstIndex+photo.NumColors)
	p = append(p, sprite.Palette...)
	for i := 0; i < photo.NumColors; i++ {
		p = append(p, color.RGBA{0, 0, 0, 0xff})
	}
	return &Framebuffer{
		width:   width,
		height:  height,
		pix:     make([]uint8, width*height),
		palette: p,
		col:     make([]byte, height),
	}, nil
}

// SetPalette implements the Display interface. Entries below
// photo.FirstIndex always hold the sprite palette.
func (f *Framebuffer) SetPalette(p *photo.Palette) error {
	for i, c := range p {
		c.A = 0xff
		f.palette[photo.FirstIndex+i] = c
	}
	f.published++
	return nil
}

// Published returns the number of palettes published to f.
func (f *Framebuffer) Published() int {
	return f.published
}

// Origin returns the map coordinate of the top left pixel.
func (f *Framebuffer) Origin() (x, y int) {
	return f.x, f.y
}

// Draw redraws the whole of f with the window at (x, y), one row at a time.
func (f *Framebuffer) Draw(c *Context, x, y int) error {
	for row := 0; row < f.height; row++ {
		if err := c.FillHorizontal(x, y+row, f.pix[row*f.width:(row+1)*f.width]); err != nil {
			return err
		}
	}
	f.x, f.y = x, y
	f.drawn = true
	return nil
}

// Scroll moves the window to (x, y). Pixels still in view are moved and
// only the newly exposed rows and columns are filled. If f has never been
// drawn it is drawn in full.
func (f *Framebuffer) Scroll(c *Context, x, y int) error {
	dx, dy := x-f.x, y-f.y
	if !f.drawn || abs(dx) >= f.width || abs(dy) >= f.height {
		return f.Draw(c, x, y)
	}
	if c.photo == nil {
		return ErrNoRoom
	}

	f.shift(dx, dy)
	f.x, f.y = x, y

	// Exposed columns
	lo, hi := 0, 0
	if dx > 0 {
		lo, hi = f.width-dx, f.width
	} else if dx < 0 {
		lo, hi = 0, -dx
	}
	for col := lo; col < hi; col++ {
		if err := c.FillVertical(x+col, y, f.col); err != nil {
			return err
		}
		for row, v := range f.col {
			f.pix[row*f.width+col] = v
		}
	}

	// Exposed rows
	lo, hi = 0, 0
	if dy > 0 {
		lo, hi = f.height-dy, f.height
	} else if dy < 0 {
		lo, hi = 0, -dy
	}
	for row := lo; row < hi; row++ {
		if err := c.FillHorizontal(x, y+row, f.pix[row*f.width:(row+1)*f.width]); err != nil {
			return err
		}
	}

	return nil
}

// shift moves the contents of f so the pixel at (dx, dy) ends up at (0, 0).
func (f *Framebuffer) shift(dx, dy int) {
	w, h := f.width, f.height
	rowOrder := func(i int) int { return i }
	if dy < 0 {
		rowOrder = func(i int) int { return h - 1 - i }
	}
	for i := 0; i < h; i++ {
		row := rowOrder(i)
		src := row + dy
		if src < 0 || src >= h {
			continue
		}
		lo, hi := clip(dx, w, w)
		// copy handles the overlap within a row
		copy(f.pix[row*w+lo:row*w+hi], f.pix[src*w+dx+lo:])
	}
}

// Image returns a copy of f as a paletted image.
func (f *Framebuffer) Image() *image.Paletted {
	p := make(color.Palette, len(f.palette))
	copy(p, f.palette)
	m := image.NewPaletted(image.Rect(0, 0, f.width, f.height), p)
	copy(m.Pix, f.pix)
	return m
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
