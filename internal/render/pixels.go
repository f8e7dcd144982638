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

// chunkEdges marks the pixels of a side*side grid that sit on the top or left
// edge of a chunk. Drawing them gives the partition lines of the overlay.
func chunkEdges(side, chunk int) []uint8 {
	mask := make([]uint8, side*side)
	if chunk <= 0 || chunk >= side {
		return mask
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if (x > 0 && x%chunk == 0) || (y > 0 && y%chunk == 0) {
				mask[y*side+x] = 1
			}
		}
	}
	return mask
}
