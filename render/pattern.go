package render

import "encoding/binary"

// Generate fills buf with the blue/green gradient: blue follows the
// column, green follows the row, each shifted by its offset and
// truncated to 8 bits. Red stays zero. Output depends only on the
// buffer shape and the two offsets.
func Generate(buf *PixelBuffer, blueOffset, greenOffset int32) {
	if buf == nil || buf.Empty() {
		return
	}
	w := int(buf.width)
	pitch := int(buf.pitch)
	for y := 0; y < int(buf.height); y++ {
		row := buf.memory[y*pitch : y*pitch+w*bytesPerPixel]
		green := uint32(uint8(int32(y) + greenOffset))
		for x := 0; x < w; x++ {
			blue := uint32(uint8(int32(x) + blueOffset))
			binary.LittleEndian.PutUint32(row[x*bytesPerPixel:], green<<8|blue)
		}
	}
}
