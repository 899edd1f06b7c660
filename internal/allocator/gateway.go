package allocator

import "unsafe"

// sizeRecordBytes is the width of the large-object header: a single
// machine word storing the total reservation length.
const sizeRecordBytes = unsafe.Sizeof(uintptr(0))

// osGateway reserves and returns anonymous memory regions from the
// operating system (page-aligned mmap mappings on unix). It is the
// component spec.md calls the "OS memory gateway": two operations, reserve
// and release.
//
// Platform implementations live in gateway_unix.go (golang.org/x/sys/unix
// mmap/munmap) and gateway_fallback.go (a pinned Go allocation, for
// platforms without an anonymous-mmap syscall wired up).
type osGateway interface {
	// reserve obtains size bytes of zeroed, read-write memory.
	reserve(size uintptr) (unsafe.Pointer, error)

	// release returns memory previously obtained from reserve. Both base
	// and size must match a prior reserve call exactly.
	release(base unsafe.Pointer, size uintptr) error
}

// newGateway returns the platform's osGateway implementation.
func newGateway() osGateway {
	return newPlatformGateway()
}
