package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayDrawsCaption(t *testing.T) {
	buf := NewPixelBuffer(nil)
	require.NoError(t, buf.Allocate(160, 32))
	Generate(buf, 0, 0)

	NewOverlay().Draw(buf, 42)

	var white int
	for y := 0; y < 32; y++ {
		for x := 0; x < 160; x++ {
			if buf.Pixel(x, y) == 0xFFFFFF {
				white++
			}
		}
	}
	assert.Positive(t, white, "caption pixels")
	assert.Zero(t, buf.Pixel(1, 1), "backdrop behind caption")
	assert.Equal(t, uint32(30<<8|155), buf.Pixel(155, 30), "pattern outside the caption untouched")
}

func TestOverlayClipsToSmallBuffer(t *testing.T) {
	buf := NewPixelBuffer(nil)
	require.NoError(t, buf.Allocate(3, 3))
	NewOverlay().Draw(buf, 1)
	NewOverlay().Draw(NewPixelBuffer(nil), 1)
}
