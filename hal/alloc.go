package hal

import (
	"github.com/pkg/errors"
)

// Allocator hands out raw zero-initialized memory blocks for pixel
// buffers. Zero-sized requests return a nil block and no error.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte) error
}

// NewAllocator returns the allocator registered under name.
// The empty name selects the heap allocator.
func NewAllocator(name string) (Allocator, error) {
	switch name {
	case "", "heap":
		return HeapAllocator(), nil
	case "pages":
		return PageAllocator(), nil
	default:
		return nil, errors.Errorf("unknown allocator %q", name)
	}
}

// HeapAllocator allocates from the Go heap. Free drops nothing; the
// block is reclaimed once the caller lets go of it.
func HeapAllocator() Allocator { return heapAllocator{} }

type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Errorf("alloc: negative size %d", size)
	}
	if size == 0 {
		return nil, nil
	}
	return make([]byte, size), nil
}

func (heapAllocator) Free([]byte) error { return nil }
