// Package arena implements a lock-free linear allocator over a contiguous
// byte region.
//
// # Overview
//
// The arena is a bump allocator: a single atomic cursor walks forward through
// the region, and every successful allocation claims a disjoint, aligned
// sub-range. Nothing is ever freed individually; the only way space comes
// back is a whole-arena Reset at a quiescent point.
//
// The allocator's control block (magic, version, capacity, cursor) lives at
// the front of the region itself. Because the cursor is resident, processes
// that map the same segment and Attach to the same control block allocate
// from one shared cursor: concurrent allocations across processes are
// coordinated by the CAS on that cursor and nothing else.
//
//	seg, _ := shm.Open("/scratch", shm.CreateOnly, 1<<20)
//	shm.BindTag[ScratchTag](seg)
//	a, _ := arena.Init(seg.Bytes())
//
//	buf, err := a.Alloc(128, 64)              // raw bytes, ephemeral addresses
//	h, err := arena.Make[Node, ScratchTag, uint32](a, Node{ID: 1})
//
// # Raw addresses vs handles
//
// Alloc and Allocate return process-local views that must never be written
// into shared bytes. AllocHandle, AllocateHandle, and Make return relocatable
// handles (relref.Seg) that are safe to persist inside the region.
//
// # Concurrency
//
// Alloc and its variants are lock-free and safe under multi-thread and
// multi-process concurrency, provided all participants attached to the same
// resident control block. A successful cursor CAS publishes only the
// allocator's own state; publishing the contents written into the returned
// storage is the caller's protocol (initialize fully, then store the handle
// with release semantics; readers load with acquire before decoding).
//
// Reset and SecureReset are NOT safe under concurrent allocation or
// concurrent reads of arena-resident objects. Callers must establish a
// quiescent point first.
//
// # Lifecycle policy
//
// Make does not register destructors and Reset does not run any. Resident
// types must be pointer-free (see relref.PointerFree) and must not need
// teardown; code that needs teardown runs its own pass before Reset.
//
// # Failure modes
//
// The low-level interface fails with package sentinels (ErrZeroSize, ErrFull,
// ErrOverflow, ErrCount) and never panics. The container-facing
// TypedAllocator passes these through to its consumers unchanged.
package arena
