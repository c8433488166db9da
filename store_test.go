package roomview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "roomview")
	require.NoError(t, err)
	return dir, func() { os.RemoveAll(dir) }
}

func testLogger() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

func gradient(width, height int) *photo.Pixels {
	p := photo.NewPixels(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p.Set(x, y, color.RGBA{uint8(x * 255 / width), uint8(y * 255 / height), uint8((x + y) * 0x0f), 0xff})
		}
	}
	return p
}

func writePhoto(t *testing.T, file string, m image.Image) {
	b := new(bytes.Buffer)
	require.NoError(t, photo.Encode(b, m))
	require.NoError(t, ioutil.WriteFile(file, b.Bytes(), 0644))
}

func writeObject(t *testing.T, file string, m image.Image) {
	b := new(bytes.Buffer)
	require.NoError(t, sprite.Encode(b, m))
	require.NoError(t, ioutil.WriteFile(file, b.Bytes(), 0644))
}

func TestLoadPhoto(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	file := filepath.Join(dir, "room"+PhotoExt)
	writePhoto(t, file, gradient(32, 16))

	s := NewStore(testLogger())

	p1, err := s.LoadPhoto(file)
	require.NoError(t, err)
	assert.Equal(t, 32, p1.Width)
	assert.Equal(t, 16, p1.Height)

	// Photos are never shared
	p2, err := s.LoadPhoto(file)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.False(t, p1 == p2)
}

func TestLoadPhotoErrors(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	s := NewStore(testLogger())

	_, err := s.LoadPhoto(filepath.Join(dir, "missing"+PhotoExt))
	assert.True(t, os.IsNotExist(err))

	file := filepath.Join(dir, "short"+PhotoExt)
	require.NoError(t, ioutil.WriteFile(file, []byte{0x01, 0x00, 0x01, 0x00, 0xff}, 0644))
	p, err := s.LoadPhoto(file)
	assert.True(t, errors.Is(err, photo.ErrNotEnough))
	assert.Nil(t, p)

	file = filepath.Join(dir, "large"+PhotoExt)
	require.NoError(t, ioutil.WriteFile(file, []byte{0x01, 0x04, 0x01, 0x00}, 0644))
	p, err = s.LoadPhoto(file)
	assert.True(t, errors.Is(err, photo.ErrTooLarge))
	assert.Nil(t, p)
}

func TestLoadObjectShared(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	m := sprite.New(2, 2)
	m.Pix[0] = 0x3f

	a := filepath.Join(dir, "a"+ObjectExt)
	b := filepath.Join(dir, "b"+ObjectExt)
	other := filepath.Join(dir, "c"+ObjectExt)
	writeObject(t, a, m)
	writeObject(t, b, m)
	writeObject(t, other, sprite.New(1, 1))

	s := NewStore(testLogger())

	oa, err := s.LoadObject(a)
	require.NoError(t, err)
	ob, err := s.LoadObject(b)
	require.NoError(t, err)
	oc, err := s.LoadObject(other)
	require.NoError(t, err)

	assert.True(t, oa == ob)
	assert.False(t, oa == oc)
	assert.Equal(t, m, oa)
	assert.Equal(t, 2, s.Objects())
}

func TestLoadObjectErrors(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	file := filepath.Join(dir, "large"+ObjectExt)
	require.NoError(t, ioutil.WriteFile(file, []byte{0x01, 0x00, sprite.MaxHeight + 1, 0x00}, 0644))

	s := NewStore(testLogger())
	o, err := s.LoadObject(file)
	assert.True(t, errors.Is(err, sprite.ErrTooLarge))
	assert.Nil(t, o)
	assert.Equal(t, 0, s.Objects())
}
