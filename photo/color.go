package photo

import "image/color"

// Color565 is a room photo pixel; 5 bits red, 6 bits green and 5 bits blue
// packed as RRRRRGGGGGGBBBBB.
type Color565 uint16

// RGB returns each channel widened to 8 bits. The top bits of each channel
// are preserved.
func (c Color565) RGB() (r, g, b uint8) {
	r = uint8(c >> 11 & 0x1f)
	g = uint8(c >> 5 & 0x3f)
	b = uint8(c & 0x1f)
	return r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2
}

// RGBA implements the color.Color interface.
func (c Color565) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

// Model converts any color to Color565 by truncating each channel.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color565(r>>11<<11 | g>>10<<5 | b>>11)
})

// fineKey returns the 12-bit bucket key made from the top 4 bits of each
// 8-bit channel.
func fineKey(r, g, b uint8) uint16 {
	return uint16(r>>4)<<8 | uint16(g>>4)<<4 | uint16(b>>4)
}

// coarseKey returns the 6-bit bucket key made from the top 2 bits of each
// 8-bit channel.
func coarseKey(r, g, b uint8) uint8 {
	return r>>6<<4 | g>>6<<2 | b>>6
}
