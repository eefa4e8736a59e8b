package arena

import (
	"math"
	"unsafe"

	"github.com/joshuapare/shmkit/basereg"
	"github.com/joshuapare/shmkit/relref"
)

// Typed allocation entry points. Methods cannot carry type parameters, so
// these are package-level functions over an *Arena, mirroring how the raw
// Alloc relates to AllocHandle.

// Allocate reserves storage for count values of T, aligned for T, and
// returns it as a slice. Fails with ErrCount for count <= 0, ErrElemType
// when T contains Go pointers, and ErrOverflow when count*sizeof(T) does not
// fit. The storage is uninitialized beyond the segment's original zero fill.
func Allocate[T any](a *Arena, count int) ([]T, error) {
	var z T
	size := unsafe.Sizeof(z)
	if count <= 0 {
		return nil, ErrCount
	}
	if size == 0 {
		return nil, ErrZeroSize
	}
	if !relref.PointerFree[T]() {
		return nil, ErrElemType
	}
	if uintptr(count) > uintptr(math.MaxInt)/size {
		return nil, ErrOverflow
	}
	b, err := a.Alloc(uintptr(count)*size, unsafe.Alignof(z))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), count), nil
}

// AllocHandle is Alloc returning a relocatable handle to the first byte
// instead of a process-local address. The tag G must already be bound to the
// base of the segment holding this arena.
func AllocHandle[G basereg.Tag, O relref.Off](a *Arena, n, alignment uintptr) (relref.Seg[byte, G, O], error) {
	b, err := a.Alloc(n, alignment)
	if err != nil {
		return relref.Seg[byte, G, O]{}, err
	}
	return relref.EncodeSeg[byte, G, O](&b[0])
}

// AllocateHandle is Allocate returning a relocatable handle to the first
// element.
func AllocateHandle[T any, G basereg.Tag, O relref.Off](a *Arena, count int) (relref.Seg[T, G, O], error) {
	s, err := Allocate[T](a, count)
	if err != nil {
		return relref.Seg[T, G, O]{}, err
	}
	return relref.EncodeSeg[T, G, O](&s[0])
}

// Make reserves storage for one T, copies v into it, and returns a
// relocatable handle. There is no rollback: if handle encoding fails the
// reserved bytes remain consumed, exactly as with any other failed
// construction over a monotonic allocator.
//
// Make does not register any teardown; see the package notes on lifecycle.
func Make[T any, G basereg.Tag, O relref.Off](a *Arena, v T) (relref.Seg[T, G, O], error) {
	s, err := Allocate[T](a, 1)
	if err != nil {
		return relref.Seg[T, G, O]{}, err
	}
	s[0] = v
	return relref.EncodeSeg[T, G, O](&s[0])
}
