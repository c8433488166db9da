package sprite

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

	sm, _ := m.(*Image)

	row := make([]byte, b.Dx())
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		if sm != nil {
			copy(row, sm.Pix[y*sm.Width:(y+1)*sm.Width])
		} else {
			for x := b.Min.X; x < b.Max.X; x++ {
				row[x-b.Min.X] = uint8(Model.Convert(m.At(x, y)).(Color222))
			}
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the Image m to w in object image format. Pixels less than
// half opaque are written as Transparent.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		return ErrTooLarge
	}

	e := encoder{w: w}

	return e.encode(m)
}
