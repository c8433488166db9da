package photo

import (
	"encoding/binary"
	"image"
	"io"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()

	var tmp [headerSize]byte
	binary.LittleEndian.PutUint16(tmp[0:2], uint16(b.Dx()))
	binary.LittleEndian.PutUint16(tmp[2:4], uint16(b.Dy()))
	if _, err := e.w.Write(tmp[:]); err != nil {
		return err
	}

	row := make([]byte, b.Dx()<<1)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := Model.Convert(m.At(x, y)).(Color565)
			binary.LittleEndian.PutUint16(row[(x-b.Min.X)<<1:], uint16(c))
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the Image m to w in room photo format. Colors are truncated
// to 5:6:5.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		return ErrTooLarge
	}

	e := encoder{w: w}

	return e.encode(m)
}
