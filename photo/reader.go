package photo

import (
	"encoding/binary"
	"errors"
	"image"
	"io"
)

var (
	// ErrNotEnough is returned when the stream ends before all of the
	// header or pixel data has been read
	ErrNotEnough = errors.New("photo: not enough image data")
	// ErrTooLarge is returned when the header declares dimensions beyond
	// MaxWidth or MaxHeight
	ErrTooLarge = errors.New("photo: image too large")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width, height int

	pixels *Pixels

	tmp [headerSize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}
	d.width = int(binary.LittleEndian.Uint16(d.tmp[0:2]))
	d.height = int(binary.LittleEndian.Uint16(d.tmp[2:4]))
	if d.width > MaxWidth || d.height > MaxHeight {
		return ErrTooLarge
	}
	return nil
}

func (d *decoder) readPixels() error {
	p := NewPixels(d.width, d.height)
	row := make([]byte, d.width<<1)

	// The file holds the bottom row first
	for y := d.height - 1; y >= 0; y-- {
		if err := readFull(d.r, row); err != nil {
			return err
		}
		for x := 0; x < d.width; x++ {
			p.Pix[y*d.width+x] = Color565(binary.LittleEndian.Uint16(row[x<<1:]))
		}
	}

	d.pixels = p
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return ErrNotEnough
	}

	if configOnly {
		return nil
	}

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return ErrNotEnough
	}

	return nil
}

// Decode reads a room photo from r, chooses its palette and maps every pixel
// onto it.
func Decode(r io.Reader) (*Image, error) {
	p, err := DecodePixels(r)
	if err != nil {
		return nil, err
	}
	return p.Quantize(), nil
}

// DecodePixels reads a room photo from r without quantizing it.
func DecodePixels(r io.Reader) (*Pixels, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.pixels, nil
}

// DecodeConfig returns the color model and dimensions of a room photo
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Model,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
