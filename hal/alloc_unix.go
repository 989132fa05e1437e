//go:build linux || darwin || freebsd || netbsd || openbsd

package hal

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// PageAllocator maps anonymous private pages straight from the OS and
// unmaps them on Free, independent of the Go garbage collector.
func PageAllocator() Allocator { return pageAllocator{} }

type pageAllocator struct{}

func (pageAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Errorf("alloc: negative size %d", size)
	}
	if size == 0 {
		return nil, nil
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", size)
	}
	return b, nil
}

func (pageAllocator) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return errors.Wrap(unix.Munmap(b), "munmap")
}
