package arena

import (
	"unsafe"

	"github.com/joshuapare/shmkit/internal/align"
)

// Arena is a process-local handle onto a linear allocator whose control
// block resides in the region itself. Handles are cheap; all shared state is
// behind h.
type Arena struct {
	h      *header
	base   unsafe.Pointer // first data byte, just past the control block
	region []byte         // full region including control block
}

// Alloc reserves n bytes aligned to a and returns the process-local view of
// the reservation. The returned address is ephemeral: store handles, not
// addresses, into shared bytes.
//
// Alignment is applied to the absolute address in this mapping; another
// mapping of the region keeps it only when the two bases differ by a
// multiple of the alignment. a == 0 is treated as 1 and non-power-of-two
// alignments are accepted.
//
// Fails with ErrZeroSize for n == 0 and ErrFull when the request does not
// fit. Failure never moves the cursor.
func (a *Arena) Alloc(n, alignment uintptr) ([]byte, error) {
	if n == 0 {
		return nil, ErrZeroSize
	}
	if alignment == 0 {
		alignment = 1
	}
	capacity := uintptr(a.h.capacity)
	for {
		cur := a.h.cursor.Load()
		addr := uintptr(a.base) + uintptr(cur)
		aligned := align.Up(addr, alignment)
		off := aligned - uintptr(a.base)
		if off > capacity || n > capacity-off {
			return nil, ErrFull
		}
		next := uint64(off + n)
		if a.h.cursor.CompareAndSwap(cur, next) {
			return a.region[HeaderSize+off : HeaderSize+off+n : HeaderSize+off+n], nil
		}
		// Lost the race; another allocator moved the cursor. Retry against
		// the fresh value.
	}
}

// Reset rewinds the cursor to zero, making the entire data area available
// again. It does not run destructors and does not interlock with in-flight
// allocations: the caller must guarantee a quiescent point, with no
// allocation and no reads of arena-resident objects, for the duration.
func (a *Arena) Reset() {
	a.h.cursor.Store(0)
}

// SecureReset zeroes the used prefix of the data area, then resets. Same
// quiescence requirement as Reset.
func (a *Arena) SecureReset() {
	used := a.Used()
	clear(a.region[HeaderSize : HeaderSize+used])
	a.Reset()
}

// Used returns the bytes reserved since the last reset, including alignment
// padding. Under concurrent allocation this is a snapshot.
func (a *Arena) Used() uintptr {
	return uintptr(a.h.cursor.Load())
}

// Capacity returns the data-area size in bytes.
func (a *Arena) Capacity() uintptr {
	return uintptr(a.h.capacity)
}

// Owns reports whether p points into the arena's data area.
func (a *Arena) Owns(p unsafe.Pointer) bool {
	addr := uintptr(p)
	base := uintptr(a.base)
	return addr >= base && addr < base+uintptr(a.h.capacity)
}

// Base returns the address of the first data byte.
func (a *Arena) Base() unsafe.Pointer {
	return a.base
}

// Region returns the full region including the control block. Intended for
// snapshot and inspection tooling; mutating the control block through it is
// a caller error.
func (a *Arena) Region() []byte {
	return a.region
}
