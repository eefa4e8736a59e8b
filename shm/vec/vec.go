// Package vec provides a relocatable dynamic array whose header and backing
// storage both live inside a segment-backed arena.
//
// A Vec is resident data: its header is three integers (length, capacity,
// and a segment-anchored handle to the element storage), so byte-copying the
// whole region, or opening it from another process and binding the tag,
// carries every Vec in it along intact.
//
// Growth allocates a fresh, larger backing range from the arena and block-
// copies the elements across. The arena is monotonic, so the discarded old
// backing stays consumed until the arena resets; that is the documented cost
// of arena-scoped containers.
//
// Element types must be pointer-free (relref.PointerFree); New rejects
// anything that would smuggle a process-local address into shared bytes.
package vec

import (
	"github.com/joshuapare/shmkit/basereg"
	"github.com/joshuapare/shmkit/relref"
	"github.com/joshuapare/shmkit/shm/arena"
)

// Vec is the resident header of a relocatable dynamic array of T inside the
// segment tagged G. Obtain one with New and decode its handle with Get; all
// methods operate on the resident header in place.
type Vec[T any, G basereg.Tag, O relref.Off] struct {
	length uint64
	capn   uint64
	data   relref.Seg[T, G, O]
}

// New allocates a Vec header in the arena and returns its handle. The
// element type is validated once here: pointer-bearing types fail with
// arena.ErrElemType.
func New[T any, G basereg.Tag, O relref.Off](a *arena.Arena) (relref.Seg[Vec[T, G, O], G, O], error) {
	if !relref.PointerFree[T]() {
		return relref.Seg[Vec[T, G, O], G, O]{}, arena.ErrElemType
	}
	return arena.Make[Vec[T, G, O], G, O](a, Vec[T, G, O]{})
}

// Len returns the element count.
func (v *Vec[T, G, O]) Len() int { return int(v.length) }

// Cap returns the current backing capacity in elements.
func (v *Vec[T, G, O]) Cap() int { return int(v.capn) }

// At returns the address of element i. It panics when i is out of range.
// The address is process-local and ephemeral, like any decoded reference.
func (v *Vec[T, G, O]) At(i int) *T {
	if i < 0 || uint64(i) >= v.length {
		panic("vec: index out of range")
	}
	s := v.slice()
	return &s[i]
}

// Slice returns the live elements as a process-local view. The view is
// invalidated by the next growth and by unmapping the segment.
func (v *Vec[T, G, O]) Slice() []T {
	return v.slice()[:v.length]
}

// DataHandle returns the relocatable handle to the element storage, for
// resident structures that want to point at the data directly.
func (v *Vec[T, G, O]) DataHandle() relref.Seg[T, G, O] { return v.data }

// Push appends x, growing through the allocator when full.
func (v *Vec[T, G, O]) Push(al arena.TypedAllocator[T], x T) error {
	if v.length == v.capn {
		if err := v.grow(al, grownCap(v.capn)); err != nil {
			return err
		}
	}
	s := v.slice()
	s[v.length] = x
	v.length++
	return nil
}

// Reserve ensures capacity for at least n elements.
func (v *Vec[T, G, O]) Reserve(al arena.TypedAllocator[T], n int) error {
	if n <= 0 || uint64(n) <= v.capn {
		return nil
	}
	return v.grow(al, uint64(n))
}

// grow moves the elements into a fresh backing range of newCap elements.
// The block copy is exactly why elements must be bitwise-relocatable.
func (v *Vec[T, G, O]) grow(al arena.TypedAllocator[T], newCap uint64) error {
	ns, err := al.Allocate(int(newCap))
	if err != nil {
		return err
	}
	old := v.slice()[:v.length]
	copy(ns, old)
	al.Deallocate(old)
	if err := v.data.Set(&ns[0]); err != nil {
		return err
	}
	v.capn = newCap
	return nil
}

// slice reconstitutes the full-capacity backing view from the data handle.
func (v *Vec[T, G, O]) slice() []T {
	if v.capn == 0 {
		return nil
	}
	return sliceAt(v.data.Get(), int(v.capn))
}

func grownCap(c uint64) uint64 {
	if c == 0 {
		return 4
	}
	return c * 2
}
