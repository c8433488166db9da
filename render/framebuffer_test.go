package render

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFramebuffer(t *testing.T, width, height int) *Framebuffer {
	fb, err := NewFramebuffer(width, height)
	require.NoError(t, err)
	return fb
}

func TestFramebufferBadSize(t *testing.T) {
	tables := []struct {
		width, height int
	}{
		{0, 1},
		{1, 0},
		{-320, 182},
		{320, -1},
	}

	for _, table := range tables {
		fb, err := NewFramebuffer(table.width, table.height)
		assert.Equal(t, ErrBadSize, err, "%dx%d", table.width, table.height)
		assert.Nil(t, fb)
	}
}

func TestFramebufferPalette(t *testing.T) {
	p := newPhoto(2, 2)
	p.Palette[0] = color.RGBA{1, 2, 3, 0xff}
	p.Palette[1] = color.RGBA{4, 5, 6, 0}

	fb := newFramebuffer(t, 4, 4)
	_, err := NewContext(fb, &testRoom{photo: p})
	require.NoError(t, err)
	assert.Equal(t, 1, fb.Published())

	m := fb.Image()
	require.Len(t, m.Palette, 256)
	assert.Equal(t, sprite.Palette[0x15], m.Palette[0x15])
	assert.Equal(t, color.RGBA{1, 2, 3, 0xff}, m.Palette[photo.FirstIndex])
	assert.Equal(t, color.RGBA{4, 5, 6, 0xff}, m.Palette[photo.FirstIndex+1])
}

func TestFramebufferDraw(t *testing.T) {
	fb := newFramebuffer(t, 3, 2)
	c, err := NewContext(fb, &testRoom{photo: newPhoto(4, 4)})
	require.NoError(t, err)

	require.NoError(t, fb.Draw(c, 1, 2))
	x, y := fb.Origin()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, []uint8{73, 74, 75, 77, 78, 79}, fb.Image().Pix)
}

func TestFramebufferNoRoom(t *testing.T) {
	fb := newFramebuffer(t, 3, 2)
	assert.Equal(t, ErrNoRoom, fb.Draw(new(Context), 0, 0))
	assert.Equal(t, ErrNoRoom, fb.Scroll(new(Context), 1, 1))
}

func TestFramebufferScroll(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	room := randomRoom(r)

	fb := newFramebuffer(t, 16, 12)
	c, err := NewContext(fb, room)
	require.NoError(t, err)

	want := newFramebuffer(t, 16, 12)
	wc, err := NewContext(want, room)
	require.NoError(t, err)

	require.NoError(t, fb.Draw(c, 0, 0))

	x, y := 0, 0
	for i := 0; i < 100; i++ {
		x += r.Intn(11) - 5
		y += r.Intn(9) - 4
		if i%25 == 0 {
			x += 40
		}

		require.NoError(t, fb.Scroll(c, x, y))
		require.NoError(t, want.Draw(wc, x, y))
		require.Equal(t, want.Image().Pix, fb.Image().Pix, "(%d, %d)", x, y)
	}
}

func TestFramebufferScrollUndrawn(t *testing.T) {
	fb := newFramebuffer(t, 2, 2)
	c, err := NewContext(fb, &testRoom{photo: newPhoto(4, 4)})
	require.NoError(t, err)

	require.NoError(t, fb.Scroll(c, 1, 1))
	assert.Equal(t, []uint8{69, 70, 73, 74}, fb.Image().Pix)
}
