package sprite

import (
	"encoding/binary"
	"errors"
	"image"
	"io"
)

var (
	// ErrNotEnough is returned when the stream ends before all of the
	// header or pixel data has been read
	ErrNotEnough = errors.New("sprite: not enough image data")
	// ErrTooLarge is returned when the header declares dimensions beyond
	// MaxWidth or MaxHeight
	ErrTooLarge = errors.New("sprite: image too large")
	// ErrBadPixel is returned when a pixel is neither a Color222 value nor
	// Transparent
	ErrBadPixel = errors.New("sprite: invalid pixel value")
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

	image *Image

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
	pix := make([]uint8, d.width*d.height)

	// The file holds the bottom row first
	for y := d.height - 1; y >= 0; y-- {
		row := pix[y*d.width : (y+1)*d.width]
		if err := readFull(d.r, row); err != nil {
			return err
		}
		for _, b := range row {
			if b > Transparent {
				return ErrBadPixel
			}
		}
	}

	d.image = &Image{
		Width:  d.width,
		Height: d.height,
		Pix:    pix,
	}
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

// Decode reads an object image from r.
func Decode(r io.Reader) (*Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of an object image
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
