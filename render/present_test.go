package render

import (
	"errors"
	"testing"

	"gradient/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentStretchesToTarget(t *testing.T) {
	win := &fakeWindow{}
	buf := NewPixelBuffer(nil)
	require.NoError(t, buf.Allocate(4, 2))
	Generate(buf, 0, 0)
	before := append([]byte(nil), buf.Memory()...)

	dev, err := win.GetDevice()
	require.NoError(t, err)
	require.NoError(t, Present(dev, buf, 1920, 1080))
	dev.Release()

	require.Len(t, win.blits, 1)
	b := win.blits[0]
	assert.Equal(t, 1920, b.dstW)
	assert.Equal(t, 1080, b.dstH)
	assert.Equal(t, 4, b.src.Width)
	assert.Equal(t, 2, b.src.Height)
	assert.Equal(t, 16, b.src.Pitch)
	assert.Equal(t, hal.PixelFormatXRGB8888, b.src.Format)
	assert.Equal(t, before, buf.Memory(), "present must not mutate the buffer")
}

func TestPresentNoopCases(t *testing.T) {
	win := &fakeWindow{}
	dev, err := win.GetDevice()
	require.NoError(t, err)
	defer dev.Release()

	empty := NewPixelBuffer(nil)
	for _, sz := range [][2]int{{0, 0}, {10, 10}, {-1, 5}} {
		require.NoError(t, Present(dev, empty, sz[0], sz[1]))
	}
	require.NoError(t, Present(dev, nil, 10, 10))
	require.NoError(t, Present(nil, empty, 10, 10))

	buf := NewPixelBuffer(nil)
	require.NoError(t, buf.Allocate(2, 2))
	require.NoError(t, Present(dev, buf, 0, 0))
	require.NoError(t, Present(dev, buf, 10, -3))

	assert.Empty(t, win.blits)
}

func TestPresentReportsDeviceError(t *testing.T) {
	win := &fakeWindow{blitErr: errors.New("lost device")}
	buf := NewPixelBuffer(nil)
	require.NoError(t, buf.Allocate(2, 2))

	dev, err := win.GetDevice()
	require.NoError(t, err)
	defer dev.Release()
	require.ErrorContains(t, Present(dev, buf, 4, 4), "lost device")
}
