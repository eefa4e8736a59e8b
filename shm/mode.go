package shm

// Mode selects how Open resolves the name against the namespace.
type Mode int

const (
	// CreateOnly creates a new segment and fails if the name exists.
	// Requires size > 0. Contents start zero-filled.
	CreateOnly Mode = iota

	// OpenOnly opens an existing segment and fails if the name is absent.
	// size 0 adopts the existing size; size > 0 fails if the existing
	// segment is smaller.
	OpenOnly

	// OpenOrCreate creates if absent, otherwise opens; each branch applies
	// its own size rules.
	OpenOrCreate
)

// String returns the mode's stable label.
func (m Mode) String() string {
	switch m {
	case CreateOnly:
		return "create-only"
	case OpenOnly:
		return "open-only"
	case OpenOrCreate:
		return "open-or-create"
	default:
		return "unknown"
	}
}
