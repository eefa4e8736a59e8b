package relref

import (
	"unsafe"

	"github.com/joshuapare/shmkit/basereg"
)

// Seg is a segment-anchored relocatable reference to a T inside the segment
// tagged G. The decoding base is the process-local base bound for G in
// package basereg; the reference's own storage address is irrelevant, so the
// handle means the same thing no matter where inside the segment it sits.
//
// A Seg value is a single integer. Plain Go assignment, copying a struct that
// embeds one, and relocating a []Seg with copy() are all correct; this is
// the bitwise-relocation property resident containers rely on.
//
// The zero value is the null reference.
type Seg[T any, G basereg.Tag, O Off] struct {
	off O
}

// EncodeSeg builds a segment-anchored reference to p. A nil p yields the null
// reference. The displacement is measured from the base currently bound for
// G, which panics if unbound.
func EncodeSeg[T any, G basereg.Tag, O Off](p *T) (Seg[T, G, O], error) {
	var r Seg[T, G, O]
	err := r.Set(p)
	return r, err
}

// MustEncodeSeg is EncodeSeg for displacements known to fit; it panics on any
// encoding failure.
func MustEncodeSeg[T any, G basereg.Tag, O Off](p *T) Seg[T, G, O] {
	r, err := EncodeSeg[T, G, O](p)
	if err != nil {
		panic(err)
	}
	return r
}

// Set re-points the reference at p, or at null if p is nil.
func (r *Seg[T, G, O]) Set(p *T) error {
	if p == nil {
		r.off = 0
		return nil
	}
	base := mustBase[G]()
	s, err := encodeOff[O](diffOf(unsafe.Pointer(p), base))
	if err != nil {
		return err
	}
	r.off = s
	return nil
}

// Clear resets the reference to null.
func (r *Seg[T, G, O]) Clear() { r.off = 0 }

// Get decodes the reference under the base bound for G. Null decodes to nil;
// decoding a non-null reference with an unbound tag panics. The result is
// not validated.
func (r Seg[T, G, O]) Get() *T {
	if r.off == 0 {
		return nil
	}
	base := mustBase[G]()
	return (*T)(unsafe.Pointer(uintptr(base) + decodeOff(r.off)))
}

// Pointer is Get without the element type, for address comparisons across
// differently-typed references.
func (r Seg[T, G, O]) Pointer() unsafe.Pointer {
	return unsafe.Pointer(r.Get())
}

// IsNil reports whether the reference is null.
func (r Seg[T, G, O]) IsNil() bool { return r.off == 0 }

// Raw exposes the stored integer for debugging and resident-format dumps.
func (r Seg[T, G, O]) Raw() O { return r.off }

// FromRaw reconstitutes a reference from its stored integer, for code that
// reads resident bytes directly (debuggers, dump tools). No validation.
func FromRaw[T any, G basereg.Tag, O Off](s O) Seg[T, G, O] {
	return Seg[T, G, O]{off: s}
}

// Equal reports whether both references decode to the same address. Two null
// references are equal.
func (r Seg[T, G, O]) Equal(other Seg[T, G, O]) bool {
	if r.off == 0 || other.off == 0 {
		return r.off == other.off
	}
	// Same tag and offset type: equal stored integers decode identically.
	return r.off == other.off
}

// mustBase returns the bound base for G or panics. Decoding through an
// unbound tag is a program-logic error, never silently decodable.
func mustBase[G basereg.Tag]() unsafe.Pointer {
	base := basereg.BaseTag[G]()
	if base == nil {
		var g G
		panic("relref: no base bound for tag slot " + itoa(int(g.TagIndex())) +
			" in this process (missing Bind?)")
	}
	return base
}

// itoa avoids pulling strconv into the decode path.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
