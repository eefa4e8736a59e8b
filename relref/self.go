package relref

import "unsafe"

// Self is a self-anchored relocatable reference: the decoding base is the
// address of the reference's own storage. It survives a whole-region copy in
// which the reference and its target move together by the same distance.
//
// A Self is NOT bitwise relocatable. Moving one to a different address by
// plain assignment or copy() silently re-aims it; the only correct ways to
// move one are Set (from a raw pointer) and CopyFrom (from another Self,
// re-encoding against the destination address). Containers that relocate
// elements with raw block moves must not hold Self values.
//
// Self references are meaningful only while their storage sits in memory
// whose address is stable, such as a mapped segment or other off-heap
// bytes. Go may
// move stack memory; do not keep a live Self in a local variable across a
// Set/Get pair.
//
// The zero value is the null reference.
type Self[T any, O Off] struct {
	off O
}

// Set points the reference at p, encoding the displacement from the
// reference's own address. A nil p yields null.
func (r *Self[T, O]) Set(p *T) error {
	if p == nil {
		r.off = 0
		return nil
	}
	s, err := encodeOff[O](diffOf(unsafe.Pointer(p), unsafe.Pointer(r)))
	if err != nil {
		return err
	}
	r.off = s
	return nil
}

// MustSet is Set for displacements known to fit; it panics on failure.
func (r *Self[T, O]) MustSet(p *T) {
	if err := r.Set(p); err != nil {
		panic(err)
	}
}

// CopyFrom assigns src's logical target to r, re-encoding the displacement
// against r's own address. This is the assignment operator for self-anchored
// references; the stored integers of source and destination usually differ.
func (r *Self[T, O]) CopyFrom(src *Self[T, O]) error {
	return r.Set(src.Get())
}

// Clear resets the reference to null.
func (r *Self[T, O]) Clear() { r.off = 0 }

// Get decodes the reference relative to its own address. Null decodes to
// nil. The result is not validated.
func (r *Self[T, O]) Get() *T {
	if r.off == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(uintptr(unsafe.Pointer(r)) + decodeOff(r.off)))
}

// Pointer is Get without the element type.
func (r *Self[T, O]) Pointer() unsafe.Pointer {
	return unsafe.Pointer(r.Get())
}

// IsNil reports whether the reference is null.
func (r *Self[T, O]) IsNil() bool { return r.off == 0 }

// Raw exposes the stored integer. Unlike Seg, equal stored integers in two
// Self references at different addresses decode to different targets.
func (r *Self[T, O]) Raw() O { return r.off }

// Equal reports whether both references decode to the same address.
func (r *Self[T, O]) Equal(other *Self[T, O]) bool {
	return r.Get() == other.Get()
}
