// Package render turns an ink mask into text, PNG images or an ebiten image.
package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, ink, blank color.Color) {
	rInk, gInk, bInk, aInk := ink.RGBA()
	rBlank, gBlank, bBlank, aBlank := blank.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rInk >> 8)
			buf[base+1] = uint8(gInk >> 8)
			buf[base+2] = uint8(bInk >> 8)
			buf[base+3] = uint8(aInk >> 8)
			continue
		}
		buf[base+0] = uint8(rBlank >> 8)
		buf[base+1] = uint8(gBlank >> 8)
		buf[base+2] = uint8(bBlank >> 8)
		buf[base+3] = uint8(aBlank >> 8)
	}
}
