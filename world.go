package roomview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/render"
	"github.com/bodgit/roomview/sprite"
)

// Object is a sprite placed in a room at a map pixel position.
type Object struct {
	X, Y   int
	Sprite *sprite.Image
}

// Position implements the render.Object interface.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}

// Image implements the render.Object interface.
func (o *Object) Image() *sprite.Image {
	return o.Sprite
}

// Room is a room photo and the objects placed in it. It implements the
// render.Room interface.
type Room struct {
	Name string

	photo   *photo.Image
	objects []render.Object
}

// NewRoom returns an empty room showing p.
func NewRoom(name string, p *photo.Image) *Room {
	return &Room{
		Name:  name,
		photo: p,
	}
}

// Photo implements the render.Room interface.
func (r *Room) Photo() *photo.Image {
	return r.photo
}

// Objects implements the render.Room interface.
func (r *Room) Objects() []render.Object {
	return r.objects
}

// Place adds o to the room, it is drawn over every object already placed.
func (r *Room) Place(o *Object) {
	r.objects = append(r.objects, o)
}

// Remove takes o out of the room, reporting whether it was there.
func (r *Room) Remove(o *Object) bool {
	for i, obj := range r.objects {
		if obj == render.Object(o) {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			return true
		}
	}
	return false
}

var errBadPlacement = errors.New("placement must be FILE@X,Y")

// ParsePlacement splits a placement of the form FILE@X,Y.
func ParsePlacement(s string) (string, int, int, error) {
	i := strings.LastIndex(s, "@")
	if i <= 0 {
		return "", 0, 0, errBadPlacement
	}
	pos := strings.Split(s[i+1:], ",")
	if len(pos) != 2 {
		return "", 0, 0, errBadPlacement
	}
	x, err := strconv.Atoi(strings.TrimSpace(pos[0]))
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad x position: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(pos[1]))
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad y position: %w", err)
	}
	return s[:i], x, y, nil
}

// PlaceFile loads the object image in file and places it in r at (x, y).
func (s *Store) PlaceFile(r *Room, file string, x, y int) (*Object, error) {
	m, err := s.LoadObject(file)
	if err != nil {
		return nil, err
	}
	o := &Object{X: x, Y: y, Sprite: m}
	r.Place(o)
	return o, nil
}
