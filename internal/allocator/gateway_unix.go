//go:build unix

package allocator

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// unixGateway reserves anonymous, private, read-write mappings directly
// from the kernel via mmap(2)/munmap(2), the same system calls
// original_source/Malloc.c uses for init_buddy_allocator/large_alloc.
type unixGateway struct{}

func newPlatformGateway() osGateway {
	return unixGateway{}
}

func (unixGateway) reserve(size uintptr) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, newError("gateway.reserve", ErrOSFailure, "mmap %d bytes: %v", size, err)
	}

	return unsafe.Pointer(unsafe.SliceData(b)), nil
}

func (unixGateway) release(base unsafe.Pointer, size uintptr) error {
	b := unsafe.Slice((*byte)(base), int(size))
	if err := unix.Munmap(b); err != nil {
		return newError("gateway.release", ErrOSFailure, "munmap %d bytes: %v", size, err)
	}

	return nil
}
