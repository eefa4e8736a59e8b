// Package sysshm provides the platform-specific primitives behind named
// shared-memory segments: create/open of the OS object, sizing, size query,
// mapping, unmapping, and namespace unlink.
//
// Callers pass portable names (leading '/', no further '/'); the mangling to
// the platform's native namespace is internal to this package. Errors are
// raw OS errors (types.ErrUnsupported on platforms with no backend);
// classification (exists / not-found) happens in package shm
// via errors.Is against fs.ErrExist and fs.ErrNotExist.
package sysshm

// An Object is an open but not necessarily mapped shared-memory object.
// Close releases the descriptor or handle; it never removes the name.
type Object struct {
	platformObject
}
