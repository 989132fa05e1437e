package hal

import (
	"image"
	"image/color"
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is 32bpp packed 0x00RRGGBB, stored little-endian
	// as [blue][green][red][pad].
	PixelFormatXRGB8888 PixelFormat = iota + 1
)

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatXRGB8888:
		return 4
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatXRGB8888:
		return "XRGB8888"
	default:
		return "unknown"
	}
}

// Bitmap is a read-only view of pixel memory handed to a Device.
//
// It implements image.Image so generic scalers and encoders can read it
// without copying.
type Bitmap struct {
	Width  int
	Height int
	Pitch  int
	Format PixelFormat
	Pix    []byte
}

// Empty reports whether the bitmap has nothing to show.
func (b Bitmap) Empty() bool {
	return len(b.Pix) == 0 || b.Width <= 0 || b.Height <= 0
}

func (b Bitmap) ColorModel() color.Model { return color.RGBAModel }

func (b Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

func (b Bitmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	off := y*b.Pitch + x*4
	if off+3 >= len(b.Pix) {
		return color.RGBA{}
	}
	return color.RGBA{R: b.Pix[off+2], G: b.Pix[off+1], B: b.Pix[off], A: 0xFF}
}

// CopyRGBA converts the bitmap into tightly packed opaque RGBA bytes.
// dst must hold at least Width*Height*4 bytes.
func (b Bitmap) CopyRGBA(dst []byte) {
	if b.Empty() {
		return
	}
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Pitch:]
		out := dst[y*b.Width*4:]
		for x := 0; x < b.Width; x++ {
			i := x * 4
			out[i+0] = row[i+2]
			out[i+1] = row[i+1]
			out[i+2] = row[i]
			out[i+3] = 0xFF
		}
	}
}

// Device is a display target acquired around a single present. Release
// must be called on every exit path.
type Device interface {
	// StretchBlit copies src onto the target, scaling it to fill
	// (0, 0, dstWidth, dstHeight). Aspect ratio is not preserved.
	StretchBlit(src Bitmap, dstWidth, dstHeight int) error
	Release()
}

// Window is the platform window plus its notification queue.
type Window interface {
	// PollEvent returns the next queued notification without blocking.
	PollEvent() (Event, bool)
	ClientSize() (width, height int)
	// GetDevice acquires the window's display target for an ordinary
	// per-frame present.
	GetDevice() (Device, error)
	// BeginPaint acquires the display target inside a paint bracket.
	// Releasing the device ends the bracket.
	BeginPaint() (Device, error)
	// DefaultHandler runs the platform's default processing for a
	// notification the application does not handle.
	DefaultHandler(ev Event) int
}
