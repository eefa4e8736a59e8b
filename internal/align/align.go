package align

// Alignment arithmetic for the arena allocator.
// Alignment is applied to absolute addresses, not offsets, so a result is
// aligned in the address space of the mapping it was computed for.

// IsPow2 reports whether a is a power of two. Zero is not.
func IsPow2(a uintptr) bool {
	return a != 0 && a&(a-1) == 0
}

// Up returns addr rounded up to the next multiple of a.
//
// a == 0 is treated as 1. Powers of two take the mask fast path; any other
// alignment falls back to modular arithmetic. Correctness does not depend on
// the fast path.
//
// Example:
//
//	Up(13, 8)  = 16
//	Up(16, 8)  = 16
//	Up(10, 24) = 24
func Up(addr, a uintptr) uintptr {
	if a <= 1 {
		return addr
	}
	if IsPow2(a) {
		return (addr + a - 1) &^ (a - 1)
	}
	if rem := addr % a; rem != 0 {
		return addr + (a - rem)
	}
	return addr
}

// UpInt is the int version of Up for size bookkeeping in callers that count
// bytes rather than addresses.
func UpInt(n, a int) int {
	return int(Up(uintptr(n), uintptr(a)))
}
