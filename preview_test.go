package roomview

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/bodgit/roomview/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 2, 1), sprite.Palette)
	m.Pix = []uint8{1, 2}

	s, err := Scale(m, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 2, 2, 1, 1, 2, 2}, s.Pix)

	s, err = Scale(m, 1)
	require.NoError(t, err)
	assert.True(t, s == m)

	_, err = Scale(m, 0)
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	m := sprite.New(3, 2).Paletted()

	b := new(bytes.Buffer)
	require.NoError(t, EncodePNG(b, m, 3))

	config, err := png.DecodeConfig(b)
	require.NoError(t, err)
	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 6, config.Height)
}
