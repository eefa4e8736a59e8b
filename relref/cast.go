package relref

import (
	"reflect"

	"github.com/joshuapare/shmkit/basereg"
)

// Cast reinterprets a segment-anchored reference as addressing a U at the
// same location. The stored integer is carried over unchanged, which is the
// whole conversion: tag and offset type must match, so the result decodes the
// same byte address under the same base.
//
// The typed-from-untyped direction (Seg[byte] from the allocator into a
// Seg[Node]) is the common use. The reverse erases the element type. Nothing
// checks that a U actually lives there.
func Cast[U, T any, G basereg.Tag, O Off](r Seg[T, G, O]) Seg[U, G, O] {
	return Seg[U, G, O]{off: r.off}
}

// PointerFree reports whether T contains no Go pointers at any depth: no
// pointers, slices, maps, strings, channels, funcs, or interfaces.
//
// Resident types must be pointer-free: a Go pointer written into shared
// bytes is a process-local address and decodes as garbage everywhere else
// (and in this process after a remap). Container constructors call this once
// per element type and refuse pointer-bearing types up front.
func PointerFree[T any]() bool {
	return pointerFree(reflect.TypeFor[T]())
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Ptr, UnsafePointer, Slice, Map, String, Chan, Func, Interface.
		return false
	}
}
