package allocator

import "unsafe"

// largeAllocate reserves size bytes plus a leading header word holding the
// total reservation length, and returns a pointer just past that header,
// mirroring original_source/Malloc.c's large_alloc (which reserves
// size+sizeof(size_t) and stashes the length at the front of the block so
// large_free can recover it from the user pointer alone).
func largeAllocate(gw osGateway, size uintptr) (unsafe.Pointer, error) {
	total := size + sizeRecordBytes

	base, err := gw.reserve(total)
	if err != nil {
		return nil, err
	}

	*(*uintptr)(base) = total

	return unsafe.Add(base, sizeRecordBytes), nil
}

// largeRelease recovers the reservation's base and recorded length from the
// header word preceding ptr, then hands the whole reservation back to gw.
func largeRelease(gw osGateway, ptr unsafe.Pointer) error {
	base := unsafe.Add(ptr, -int(sizeRecordBytes))
	total := *(*uintptr)(base)

	return gw.release(base, total)
}
