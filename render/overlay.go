package render

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	overlayText = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	overlayBack = color.RGBA{A: 0xFF}
)

const overlayPad = 2

// Overlay draws a one-line diagnostic caption into the top-left corner
// of the back buffer.
type Overlay struct {
	font tinyfont.Fonter
}

func NewOverlay() *Overlay {
	return &Overlay{font: &proggy.TinySZ8pt7b}
}

// Draw writes "frame N WxH" over whatever Generate left in buf.
func (o *Overlay) Draw(buf *PixelBuffer, frame uint64) {
	if buf == nil || buf.Empty() {
		return
	}
	s := fmt.Sprintf("frame %d %dx%d", frame, buf.Width(), buf.Height())
	d := &bufferDisplayer{buf: buf}

	_, outbox := tinyfont.LineWidth(o.font, s)
	lineH := int16(o.font.GetYAdvance())
	_ = d.FillRectangle(0, 0, int16(outbox)+2*overlayPad, lineH+2*overlayPad, overlayBack)
	tinyfont.WriteLine(d, o.font, overlayPad, overlayPad+lineH-overlayPad, s, overlayText)
}

// bufferDisplayer adapts a PixelBuffer to drivers.Displayer.
type bufferDisplayer struct {
	buf *PixelBuffer
}

var _ drivers.Displayer = (*bufferDisplayer)(nil)

func (d *bufferDisplayer) Size() (x, y int16) {
	return clampInt16(d.buf.Width()), clampInt16(d.buf.Height())
}

func (d *bufferDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int32(x) >= d.buf.Width() || int32(y) >= d.buf.Height() {
		return
	}
	d.buf.setPixel(int(x), int(y), uint32(c.R)<<16|uint32(c.G)<<8|uint32(c.B))
}

func (d *bufferDisplayer) Display() error { return nil }

func (d *bufferDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			d.SetPixel(px, py, c)
		}
	}
	return nil
}

func clampInt16(v int32) int16 {
	if v > 0x7FFF {
		return 0x7FFF
	}
	return int16(v)
}
