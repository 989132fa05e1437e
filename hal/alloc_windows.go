//go:build windows

package hal

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// PageAllocator commits pages with VirtualAlloc and releases them with
// VirtualFree, independent of the Go garbage collector.
func PageAllocator() Allocator { return pageAllocator{} }

type pageAllocator struct{}

func (pageAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Errorf("alloc: negative size %d", size)
	}
	if size == 0 {
		return nil, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, errors.Wrapf(err, "VirtualAlloc %d bytes", size)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func (pageAllocator) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	err := windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
	return errors.Wrap(err, "VirtualFree")
}
