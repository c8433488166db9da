package roomview

import (
	"image"
	"os"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/sprite"
)

// EncodeFile decodes the image in in using any registered image format and
// writes it to out as an object image if object is set, otherwise as a room
// photo.
func EncodeFile(in, out string, object bool) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}

	if object {
		err = sprite.Encode(w, m)
	} else {
		err = photo.Encode(w, m)
	}
	if err != nil {
		w.Close()
		os.Remove(out)
		return err
	}

	return w.Close()
}
