//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package hal

// PageAllocator falls back to the heap where the OS exposes no page API.
func PageAllocator() Allocator { return heapAllocator{} }
