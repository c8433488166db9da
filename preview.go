package roomview

import (
	"errors"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

var errBadScale = errors.New("scale must be at least 1")

// Scale returns m enlarged by an integer factor using nearest neighbour
// sampling so no new colors are introduced.
func Scale(m *image.Paletted, factor int) (*image.Paletted, error) {
	if factor < 1 {
		return nil, errBadScale
	}
	if factor == 1 {
		return m, nil
	}
	b := m.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor), m.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst, nil
}

// EncodePNG writes m to w as a PNG, enlarged by factor.
func EncodePNG(w io.Writer, m *image.Paletted, factor int) error {
	dst, err := Scale(m, factor)
	if err != nil {
		return err
	}
	return png.Encode(w, dst)
}

// WritePNG writes m to file as a PNG, enlarged by factor.
func WritePNG(file string, m *image.Paletted, factor int) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := EncodePNG(f, m, factor); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
