/*
Package render composites room photos and the objects placed in them into
the horizontal and vertical pixel strips used to scroll an indexed display.
*/
package render

import (
	"errors"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/sprite"
)

const (
	// DefaultWidth is the width of the scrolling window and so the length
	// of a horizontal strip
	DefaultWidth = 320
	// DefaultHeight is the height of the scrolling window and so the
	// length of a vertical strip
	DefaultHeight = 182

	// Filler is the pixel value used outside of the room photo
	Filler = 0
)

var (
	// ErrNoRoom is returned when filling a strip before any room has been
	// activated
	ErrNoRoom = errors.New("render: no room activated")
	// ErrNoPhoto is returned when activating a room without a photo
	ErrNoPhoto = errors.New("render: room has no photo")
	// ErrBadSize is returned when creating a framebuffer smaller than one
	// pixel in either direction
	ErrBadSize = errors.New("render: invalid framebuffer size")
)

// Object is an object placed in a room.
type Object interface {
	// Position returns the top left corner of the object in map pixels
	Position() (x, y int)
	Image() *sprite.Image
}

// Room is a room in the world model.
type Room interface {
	Photo() *photo.Image
	// Objects returns the objects in the room in drawing order, later
	// objects are drawn over earlier ones
	Objects() []Object
}

// Display accepts the palette of the room being shown.
type Display interface {
	SetPalette(*photo.Palette) error
}

// Context records the room currently being shown. The zero value has no
// room activated.
type Context struct {
	room  Room
	photo *photo.Image
}

// NewContext returns a Context with r already activated on d.
func NewContext(d Display, r Room) (*Context, error) {
	c := new(Context)
	if err := c.Activate(d, r); err != nil {
		return nil, err
	}
	return c, nil
}

// Activate publishes the palette of the photo of r to d and makes r the
// room used by subsequent strips. If publishing fails the previous room
// remains active.
func (c *Context) Activate(d Display, r Room) error {
	p := r.Photo()
	if p == nil {
		return ErrNoPhoto
	}
	if err := d.SetPalette(&p.Palette); err != nil {
		return err
	}
	// The photo is remembered rather than asked for again so the pixels
	// always match the published palette
	c.room, c.photo = r, p
	return nil
}

// Room returns the active room, or nil.
func (c *Context) Room() Room {
	return c.room
}
