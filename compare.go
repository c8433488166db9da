package roomview

import (
	"image/color"

	"github.com/bodgit/roomview/photo"
	"github.com/ericpauley/go-quantize/quantize"
)

// Comparison holds the mean squared error per pixel, summed over the three
// 8-bit channels, of two palettes chosen for the same photo.
type Comparison struct {
	Pixels    int
	TwoLevel  float64
	MedianCut float64
}

func sqDiff(x, y uint8) uint64 {
	d := int64(x) - int64(y)
	return uint64(d * d)
}

func colorDiff(c photo.Color565, p color.Color) uint64 {
	r1, g1, b1 := c.RGB()
	r, g, b, _ := p.RGBA()
	return sqDiff(r1, uint8(r>>8)) + sqDiff(g1, uint8(g>>8)) + sqDiff(b1, uint8(b>>8))
}

// ComparePixels quantizes p using both the two-level palette and a median
// cut palette of the same size and reports the error of each.
func ComparePixels(p *photo.Pixels) *Comparison {
	c := &Comparison{Pixels: len(p.Pix)}
	if c.Pixels == 0 {
		return c
	}

	m := p.Quantize()
	var sum uint64
	for i, v := range m.Pix {
		sum += colorDiff(p.Pix[i], m.Palette[v-photo.FirstIndex])
	}
	c.TwoLevel = float64(sum) / float64(c.Pixels)

	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, photo.NumColors), p)
	sum = 0
	for _, v := range p.Pix {
		sum += colorDiff(v, pal.Convert(v))
	}
	c.MedianCut = float64(sum) / float64(c.Pixels)

	return c
}

// Compare loads the room photo in file and compares palettes for it.
func (m *RoomView) Compare(file string) (*Comparison, error) {
	p, err := m.store.LoadPixels(file)
	if err != nil {
		return nil, err
	}
	c := ComparePixels(p)
	m.logger.Printf("Compared \"%s\", two-level %.2f, median cut %.2f\n", file, c.TwoLevel, c.MedianCut)
	return c, nil
}
