// Package shm manages named, OS-backed shared byte regions: creation,
// opening, sizing, mapping, removal, and the per-process anchor binding that
// makes relocatable references decodable.
//
// # Overview
//
// A Segment is a mapped view of a named object. The creator picks the size;
// openers adopt it. The same portable name resolves to the same bytes in
// every process that opens it, each at its own base address:
//
//	// producer
//	seg, err := shm.Open("/telemetry", shm.CreateOnly, 1<<20)
//	if err != nil { ... }
//	defer seg.Close()
//	shm.BindTag[TelemetryTag](seg)
//
//	// consumer (any process, any time after the create)
//	seg, err := shm.Open("/telemetry", shm.OpenOnly, 0)
//	if err != nil { ... }
//	defer seg.Close()
//	shm.BindTag[TelemetryTag](seg)
//
// Mapping and binding are distinct steps: Open maps, BindTag (or Bind)
// installs the base into the basereg slot that segment-anchored references
// decode through. Forgetting to bind is the classic mistake; decoding then
// panics rather than fabricating an address.
//
// # Naming
//
// Portable names are non-empty, begin with '/', contain no further '/', and
// are valid UTF-8. How the name lands in the platform namespace (a tmpfs
// file, a section object) is internal.
//
// # Lifetime
//
// Close unmaps the region and closes the descriptor in this process only.
// The name stays in the namespace until Remove, which on Windows is a no-op
// because section lifetime is tied to open handles instead.
//
// # Errors
//
// All failures are *types.Error values carrying the operation, the portable
// name, and the OS cause. A constructor that fails after creating the OS
// object rolls everything back (unmap, close, unlink if created) before
// returning.
package shm
