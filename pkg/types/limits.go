package types

// Limits shared by the segment layer and tooling.
const (
	// MinNameLen is the minimum portable name length, counting the leading
	// slash. "/a" is the shortest valid name.
	MinNameLen = 2

	// MaxNameLen bounds the portable name, matching the tightest common
	// POSIX NAME_MAX for shm objects.
	MaxNameLen = 255

	// MaxSegmentSize caps a single mapping at 1 TiB. Nothing in the format
	// requires this; it exists so a corrupted size field fails loudly
	// instead of asking the kernel for an absurd reservation.
	MaxSegmentSize = int64(1) << 40
)
