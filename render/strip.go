package render

import "github.com/bodgit/roomview/sprite"

// FillHorizontal fills buf with the row of pixels starting at map
// coordinate (x, y) and extending right.
func (c *Context) FillHorizontal(x, y int, buf []byte) error {
	p := c.photo
	if p == nil {
		return ErrNoRoom
	}
	n := len(buf)

	for i := range buf {
		buf[i] = Filler
	}
	if y >= 0 && y < p.Height {
		lo, hi := clip(x, n, p.Width)
		if lo < hi {
			copy(buf[lo:hi], p.Pix[y*p.Width+x+lo:])
		}
	}

	for _, obj := range c.room.Objects() {
		img := obj.Image()
		if img == nil {
			continue
		}
		ox, oy := obj.Position()

		// Is the object off this line?
		if y < oy || y >= oy+img.Height || x+n <= ox || x >= ox+img.Width {
			continue
		}

		row := img.Pix[(y-oy)*img.Width : (y-oy+1)*img.Width]

		// Offsets depend on whether the object starts left or right
		// of the start of the line
		var i, j int
		if x <= ox {
			i = ox - x
		} else {
			j = x - ox
		}

		for ; i < n && j < img.Width; i, j = i+1, j+1 {
			if v := row[j]; v != sprite.Transparent {
				buf[i] = v
			}
		}
	}

	return nil
}

// FillVertical fills buf with the column of pixels starting at map
// coordinate (x, y) and extending down.
func (c *Context) FillVertical(x, y int, buf []byte) error {
	p := c.photo
	if p == nil {
		return ErrNoRoom
	}
	n := len(buf)

	for i := range buf {
		buf[i] = Filler
	}
	if x >= 0 && x < p.Width {
		lo, hi := clip(y, n, p.Height)
		for i := lo; i < hi; i++ {
			buf[i] = p.Pix[(y+i)*p.Width+x]
		}
	}

	for _, obj := range c.room.Objects() {
		img := obj.Image()
		if img == nil {
			continue
		}
		ox, oy := obj.Position()

		// Is the object off this line?
		if x < ox || x >= ox+img.Width || y+n <= oy || y >= oy+img.Height {
			continue
		}

		col := x - ox

		// Offsets depend on whether the object starts above or below
		// the start of the line
		var i, j int
		if y <= oy {
			i = oy - y
		} else {
			j = y - oy
		}

		for ; i < n && j < img.Height; i, j = i+1, j+1 {
			if v := img.Pix[j*img.Width+col]; v != sprite.Transparent {
				buf[i] = v
			}
		}
	}

	return nil
}

// clip returns the range of offsets [lo, hi) into a strip of length n
// starting at start that fall within [0, size).
func clip(start, n, size int) (int, int) {
	lo, hi := 0, n
	if start < 0 {
		lo = -start
	}
	if start+n > size {
		hi = size - start
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
