package allocator

import "unsafe"

// Allocator is the public two-tier allocator: a buddy-system region for
// requests under Config.Threshold, and an OS-backed large path for
// everything else. The zero value is not usable; construct one with New.
//
// Allocator is not safe for concurrent use. spec.md's concurrency model
// treats the allocator as single-threaded state owned by one caller at a
// time, the same contract the teacher's ArenaAllocatorImpl documents for
// its bump pointer.
type Allocator struct {
	cfg     *Config
	gateway osGateway
	buddy   *buddyEngine
	base    unsafe.Pointer
	lastErr error
	live    bool
}

// New builds an Allocator from opts but does not yet reserve any memory;
// call Init before the first Allocate.
func New(opts ...Option) (*Allocator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Allocator{cfg: cfg, gateway: newGateway()}, nil
}

// Init reserves the managed region from the OS gateway and clears the
// bitmap. It is one-shot: calling it twice without an intervening Destroy
// is a caller contract violation and returns an error rather than leaking
// the first reservation.
func (a *Allocator) Init() error {
	if a.live {
		return a.fail(newError("Init", ErrOSFailure, "allocator is already initialized"))
	}

	base, err := a.gateway.reserve(a.cfg.RegionSize)
	if err != nil {
		return a.fail(err)
	}

	a.base = base
	a.buddy = newBuddyEngine(base, a.cfg)
	a.live = true
	a.lastErr = nil

	return nil
}

// Destroy returns the managed region to the OS gateway and clears the
// bitmap. Must be called after no outstanding buddy allocations remain;
// outstanding large allocations are unaffected since they live outside the
// managed region.
func (a *Allocator) Destroy() error {
	if !a.live {
		return a.fail(newError("Destroy", ErrOSFailure, "allocator is not initialized"))
	}

	if err := a.gateway.release(a.base, a.cfg.RegionSize); err != nil {
		return a.fail(err)
	}

	a.buddy.reset()
	a.live = false
	a.base = nil

	return nil
}

// Allocate returns a pointer to size bytes, or nil if size is 0 or no path
// could satisfy the request. Requests under Config.Threshold are served
// from the buddy region, falling back to the large path on exhaustion when
// Config.FallbackToLarge is set; everything else goes straight to the
// large path.
func (a *Allocator) Allocate(size uintptr) unsafe.Pointer {
	if size == 0 {
		a.fail(newError("Allocate", ErrInvalidSize, "size must be > 0"))
		return nil
	}

	if size < a.cfg.Threshold {
		if ptr, ok := a.buddy.allocate(size); ok {
			a.lastErr = nil
			return ptr
		}

		if !a.cfg.FallbackToLarge {
			a.fail(newError("Allocate", ErrOutOfMemory, "buddy region exhausted for %d bytes", size))
			return nil
		}
	}

	ptr, err := largeAllocate(a.gateway, size)
	if err != nil {
		if size < a.cfg.Threshold {
			a.fail(newError("Allocate", ErrOutOfMemory, "large path failed for %d bytes: %v", size, err))
		} else {
			a.fail(err)
		}
		return nil
	}

	a.lastErr = nil

	return ptr
}

// Release returns ptr to its owning path: the buddy engine if it falls
// inside the managed region, the large path otherwise. It returns 0 on
// success and -1 on error, setting LastError on failure, per the dispatcher
// contract in spec.md §6.
func (a *Allocator) Release(ptr unsafe.Pointer) int {
	if ptr == nil {
		a.fail(newError("Release", ErrInvalidPointer, "pointer is nil"))
		return -1
	}

	var err error
	if a.live && a.buddy.contains(ptr) {
		err = a.buddy.release(ptr)
	} else {
		err = largeRelease(a.gateway, ptr)
	}

	if err != nil {
		a.fail(err)
		return -1
	}

	a.lastErr = nil

	return 0
}

// LastError returns the error set by the most recent failed operation. A
// successful Init, Allocate or Release resets it to nil; a successful
// Destroy leaves it unchanged.
func (a *Allocator) LastError() error {
	return a.lastErr
}

func (a *Allocator) fail(err error) error {
	a.lastErr = err
	return err
}
