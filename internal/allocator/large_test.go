package allocator

import (
	"testing"
	"unsafe"
)

func TestLargeAllocateHeaderAndRelease(t *testing.T) {
	gw := newGateway()

	ptr, err := largeAllocate(gw, 5000)
	if err != nil {
		t.Fatalf("largeAllocate: %v", err)
	}

	header := (*uintptr)(unsafe.Add(ptr, -int(sizeRecordBytes)))
	if *header != 5000+sizeRecordBytes {
		t.Errorf("header = %d, want %d", *header, 5000+sizeRecordBytes)
	}

	payload := unsafe.Slice((*byte)(ptr), 5000)
	for i := range payload {
		payload[i] = 0xAA
	}

	for i, b := range payload {
		if b != 0xAA {
			t.Fatalf("byte %d = %#x after fill, want 0xAA", i, b)
		}
	}

	if err := largeRelease(gw, ptr); err != nil {
		t.Fatalf("largeRelease: %v", err)
	}
}

func TestLargeAllocateZeroSize(t *testing.T) {
	gw := newGateway()

	ptr, err := largeAllocate(gw, 0)
	if err != nil {
		t.Fatalf("largeAllocate(0): %v", err)
	}
	defer largeRelease(gw, ptr)

	header := *(*uintptr)(unsafe.Add(ptr, -int(sizeRecordBytes)))
	if header != sizeRecordBytes {
		t.Errorf("header = %d, want %d (header-only reservation)", header, sizeRecordBytes)
	}
}
