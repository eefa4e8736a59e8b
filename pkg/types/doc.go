// Package types defines the public error taxonomy and limits shared by the
// shmkit packages.
//
// # Typed Errors
//
// Every structural failure surfaced by the segment lifecycle is a *types.Error
// carrying a stable ErrKind, the failing operation, and the portable segment
// name involved. Callers branch on kind (or on the exported sentinels) via
// errors.Is / errors.As rather than matching message text:
//
//	seg, err := shm.Open("/queue", shm.OpenOnly, 0)
//	if errors.Is(err, types.ErrNotFound) {
//	    // creator has not run yet
//	}
//
// Low-level allocator and reference-encoding failures use package-local
// sentinels (see shm/arena and relref); this package covers the surface where
// a rich diagnostic is worth the weight.
//
// # Limits
//
// limits.go holds the portable-name and sizing constants shared by the
// segment layer and the CLI tools.
package types
