// Package basereg is the per-process registry mapping segment tags to mapped
// base addresses.
//
// Every segment-anchored reference decodes through exactly one slot in this
// table. The table is process-local state: it is never written into shared
// bytes, and mapping a segment does not bind it; binding is an explicit step
// performed by shm.(*Segment).Bind, shm.BindTag, or a direct Bind call here.
// Arena Init and Attach do not bind.
//
// The registry is a single package-level table, so all code linked into one
// process shares one storage location per tag. Deployments that load the
// library through plugins must ensure the main module hosts this package.
//
// Binds are expected during process initialization, before decoding starts.
// A later Bind replaces the earlier base; the store is a single atomic
// pointer write, which is all the synchronization the single-slot contract
// needs.
package basereg

import (
	"sync/atomic"
	"unsafe"
)

// NumSlots is the size of the tag table. Tags are small integers; two
// distinct active mappings must use distinct tags.
const NumSlots = 256

// Tag is the compile-time identity of a segment family. Implementations are
// empty struct types whose TagIndex returns a constant slot index:
//
//	type HeapTag struct{}
//
//	func (HeapTag) TagIndex() uint8 { return 0 }
//
// The type, not the index, is what keeps references to different segments
// from mixing: a relref.Seg[T, HeapTag, O] will not assign to a
// relref.Seg[T, OtherTag, O] even if both tags share an index by mistake.
type Tag interface {
	TagIndex() uint8
}

var slots [NumSlots]atomic.Pointer[byte]

// Bind installs base as the decoding base for slot index in this process.
// Later binds replace earlier ones.
func Bind(index uint8, base unsafe.Pointer) {
	slots[index].Store((*byte)(base))
}

// BindTag is the typed form of Bind.
func BindTag[G Tag](base unsafe.Pointer) {
	var g G
	Bind(g.TagIndex(), base)
}

// BindTagBytes binds the first byte of b as the base for tag G. It is the
// convenience form for regions held as plain byte slices, such as copies of
// a segment made for snapshotting.
func BindTagBytes[G Tag](b []byte) {
	if len(b) == 0 {
		BindTag[G](nil)
		return
	}
	BindTag[G](unsafe.Pointer(&b[0]))
}

// Unbind clears the slot. Subsequent decodes of non-null references under
// this tag panic until a new Bind.
func Unbind(index uint8) {
	slots[index].Store(nil)
}

// Base returns the bound base for slot index, or nil if the slot is unset.
func Base(index uint8) unsafe.Pointer {
	return unsafe.Pointer(slots[index].Load())
}

// BaseTag is the typed form of Base.
func BaseTag[G Tag]() unsafe.Pointer {
	var g G
	return Base(g.TagIndex())
}
