package arena

import "errors"

var (
	// ErrZeroSize indicates a zero-byte allocation request.
	ErrZeroSize = errors.New("arena: zero-size allocation")

	// ErrFull indicates insufficient remaining capacity for the request.
	ErrFull = errors.New("arena: insufficient capacity")

	// ErrOverflow indicates a typed allocation whose byte size computation
	// overflows.
	ErrOverflow = errors.New("arena: allocation size overflows")

	// ErrCount indicates a typed allocation with count <= 0.
	ErrCount = errors.New("arena: count must be > 0")

	// ErrRegionSmall indicates a region too small to hold the control block.
	ErrRegionSmall = errors.New("arena: region smaller than control block")

	// ErrNotArena indicates a control block without the arena magic.
	ErrNotArena = errors.New("arena: control block magic mismatch")

	// ErrVersion indicates a control block written by an incompatible version.
	ErrVersion = errors.New("arena: unsupported control block version")

	// ErrCapacity indicates a control block whose recorded capacity does not
	// fit the mapped region.
	ErrCapacity = errors.New("arena: control block capacity exceeds region")

	// ErrElemType indicates a resident element type that contains Go pointers.
	ErrElemType = errors.New("arena: element type contains Go pointers")
)
