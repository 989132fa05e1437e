package render

import (
	"encoding/binary"
	"math"

	"gradient/hal"

	"github.com/pkg/errors"
)

const bytesPerPixel = 4

// PixelBuffer is the off-screen back buffer: a block of XRGB8888 pixel
// memory plus its shape. Memory is either nil or exactly Pitch*Height
// bytes.
type PixelBuffer struct {
	width  int32
	height int32
	pitch  int32
	memory []byte

	alloc hal.Allocator
}

// NewPixelBuffer returns an empty buffer that draws its memory from
// alloc. A nil alloc selects the heap.
func NewPixelBuffer(alloc hal.Allocator) *PixelBuffer {
	if alloc == nil {
		alloc = hal.HeapAllocator()
	}
	return &PixelBuffer{alloc: alloc}
}

func (b *PixelBuffer) Width() int32            { return b.width }
func (b *PixelBuffer) Height() int32           { return b.height }
func (b *PixelBuffer) Pitch() int32            { return b.pitch }
func (b *PixelBuffer) Memory() []byte          { return b.memory }
func (b *PixelBuffer) Format() hal.PixelFormat { return hal.PixelFormatXRGB8888 }

// Empty reports whether there is nothing to render into.
func (b *PixelBuffer) Empty() bool {
	return b.memory == nil || b.width <= 0 || b.height <= 0
}

// Allocate releases any held memory and commits a zero-initialized block
// for a width x height buffer. A zero dimension leaves the memory nil.
// On failure the buffer is left empty.
func (b *PixelBuffer) Allocate(width, height int32) error {
	if err := b.Release(); err != nil {
		return err
	}
	if width < 0 || height < 0 {
		return errors.Errorf("allocate %dx%d: negative dimension", width, height)
	}
	pitch := int64(width) * bytesPerPixel
	size := pitch * int64(height)
	if pitch > math.MaxInt32 || size > math.MaxInt32 {
		return errors.Errorf("allocate %dx%d: buffer too large", width, height)
	}

	mem, err := b.alloc.Alloc(int(size))
	if err != nil {
		return errors.Wrapf(err, "allocate %dx%d", width, height)
	}
	if int64(len(mem)) != size {
		_ = b.alloc.Free(mem)
		return errors.Errorf("allocate %dx%d: got %d bytes, want %d", width, height, len(mem), size)
	}
	if size == 0 {
		mem = nil
	}

	b.width = width
	b.height = height
	b.pitch = int32(pitch)
	b.memory = mem
	return nil
}

// Release frees the memory and zeroes the recorded shape. Releasing an
// empty buffer is a no-op.
func (b *PixelBuffer) Release() error {
	mem := b.memory
	b.memory = nil
	b.width, b.height, b.pitch = 0, 0, 0
	if mem == nil {
		return nil
	}
	return errors.Wrap(b.alloc.Free(mem), "release pixel buffer")
}

// Pixel returns the packed value at (x, y), or 0 outside the buffer.
func (b *PixelBuffer) Pixel(x, y int) uint32 {
	if b.Empty() || x < 0 || y < 0 || x >= int(b.width) || y >= int(b.height) {
		return 0
	}
	off := y*int(b.pitch) + x*bytesPerPixel
	return binary.LittleEndian.Uint32(b.memory[off:])
}

func (b *PixelBuffer) setPixel(x, y int, v uint32) {
	off := y*int(b.pitch) + x*bytesPerPixel
	binary.LittleEndian.PutUint32(b.memory[off:], v)
}

// Bitmap returns a read-only view for presentation.
func (b *PixelBuffer) Bitmap() hal.Bitmap {
	return hal.Bitmap{
		Width:  int(b.width),
		Height: int(b.height),
		Pitch:  int(b.pitch),
		Format: b.Format(),
		Pix:    b.memory,
	}
}
