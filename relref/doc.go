// Package relref implements relocatable references: small integer-encoded
// handles that replace native pointers inside byte regions shared between
// processes or relocated between base addresses.
//
// # Overview
//
// A native pointer stored inside a shared mapping is garbage in every other
// process, because each process maps the region at its own base. A
// relocatable reference stores a displacement instead, and decodes it through
// an anchor that supplies the base:
//
//   - Seg[T, G, O] is anchored to the segment tagged G: the decoding base is
//     whatever base the current process bound for G in package basereg. Seg
//     values are single integers and relocate bitwise: copying the bytes of
//     a whole region keeps every Seg inside it meaningful.
//
//   - Self[T, O] is anchored to its own storage address. It survives a whole
//     region copy in which target and reference move together, but it must
//     never be moved by plain Go assignment; use CopyFrom, which re-encodes
//     against the destination address.
//
// # Encoding
//
// The stored integer s reserves 0 for the null reference; a non-null
// reference stores displacement+1. The single cost is that the exact
// displacement -1 has no encoding (it would collide with null); encoding it
// fails. With an unsigned offset type, negative displacements are
// unrepresentable entirely.
//
// # Choosing the offset type
//
// O sets the reachable range. Signed types permit backward references;
// unsigned types double the forward range at the same width. The package
// takes no default; resident data formats should pin the choice in a type
// alias:
//
//	type NodeRef = relref.Seg[Node, HeapTag, uint32]
//
// # What decoding does not do
//
// Get never validates the decoded address. Decoding a non-null segment
// reference with an unbound tag panics; everything else is the resident
// data's contract.
package relref
