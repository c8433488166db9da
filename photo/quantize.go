package photo

import (
	"fmt"
	"image/color"
	"sort"
)

// bucket accumulates the 8-bit channel sums of every pixel that falls in it
type bucket struct {
	red, green, blue uint32
	count            uint32
}

func (b *bucket) add(r, g, bl uint8) {
	b.red += uint32(r)
	b.green += uint32(g)
	b.blue += uint32(bl)
	b.count++
}

func (b *bucket) fold(o *bucket) {
	b.red += o.red
	b.green += o.green
	b.blue += o.blue
	b.count += o.count
}

func (b *bucket) mean() color.RGBA {
	return color.RGBA{
		uint8(b.red / b.count),
		uint8(b.green / b.count),
		uint8(b.blue / b.count),
		0xff,
	}
}

// Quantizer builds the palette for a single photo. Every pixel is counted
// with Add, then Palette and Index may be called; adding more pixels after
// the palette has been built has no effect on it.
type Quantizer struct {
	fine   [fineBuckets]bucket
	coarse [coarseBuckets]bucket

	// Palette slot for each fine key, or -1 if the bucket was folded into
	// the coarse table
	slots [fineBuckets]int16

	palette Palette
	built   bool
}

// Add counts the pixel c.
func (q *Quantizer) Add(c Color565) {
	r, g, b := c.RGB()
	q.fine[fineKey(r, g, b)].add(r, g, b)
}

func (q *Quantizer) build() {
	if q.built {
		return
	}
	q.built = true

	// Keys ordered by descending count, equal counts stay in key order
	order := make([]uint16, fineBuckets)
	for i := range order {
		order[i] = uint16(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return q.fine[order[i]].count > q.fine[order[j]].count
	})

	for i := range q.slots {
		q.slots[i] = -1
	}

	for slot, key := range order[:fineColors] {
		b := &q.fine[key]
		if b.count == 0 {
			continue
		}
		q.palette[slot] = b.mean()
		q.slots[key] = int16(slot)
	}

	for _, key := range order[fineColors:] {
		b := &q.fine[key]
		if b.count == 0 {
			continue
		}
		m := b.mean()
		q.coarse[coarseKey(m.R, m.G, m.B)].fold(b)
	}

	for i := range q.coarse {
		if q.coarse[i].count != 0 {
			q.palette[fineColors+i] = q.coarse[i].mean()
		}
	}
}

// Palette returns the palette chosen for every pixel added so far.
func (q *Quantizer) Palette() *Palette {
	q.build()
	p := q.palette
	return &p
}

// Index returns the pixel value for c, between FirstIndex and
// FirstIndex+NumColors-1. It panics if no palette entry covers c, which
// cannot happen for a color that was added.
func (q *Quantizer) Index(c Color565) uint8 {
	q.build()

	r, g, b := c.RGB()
	if slot := q.slots[fineKey(r, g, b)]; slot >= 0 {
		return FirstIndex + uint8(slot)
	}

	k := coarseKey(r, g, b)
	if q.coarse[k].count == 0 {
		panic(fmt.Sprintf("photo: no palette entry for color %#04x", uint16(c)))
	}
	return FirstIndex + fineColors + k
}

// Quantize chooses the palette for pix and returns it along with the pixel
// value for each pixel.
func Quantize(pix []Color565) (*Palette, []uint8) {
	q := new(Quantizer)
	for _, c := range pix {
		q.Add(c)
	}

	out := make([]uint8, len(pix))
	for i, c := range pix {
		out[i] = q.Index(c)
	}

	return q.Palette(), out
}
