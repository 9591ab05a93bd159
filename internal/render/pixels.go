package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// markColumn tints column x of a w-wide RGBA buffer by blending mark over
// every pixel, leaving alpha opaque.
func markColumn(buf []byte, w, x int, mark color.RGBA) {
	if w <= 0 || x < 0 || x >= w {
		return
	}
	for base := x * 4; base+3 < len(buf); base += w * 4 {
		buf[base+0] = uint8((uint16(buf[base+0]) + uint16(mark.R)) / 2)
		buf[base+1] = uint8((uint16(buf[base+1]) + uint16(mark.G)) / 2)
		buf[base+2] = uint8((uint16(buf[base+2]) + uint16(mark.B)) / 2)
		buf[base+3] = 0xff
	}
}
