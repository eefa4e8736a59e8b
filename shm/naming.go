package shm

import (
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/shmkit/pkg/types"
)

// ValidateName checks the portable form: non-empty, leading '/', no further
// '/', valid UTF-8, and within the length limits. Platform mangling assumes
// exactly this shape, so it is enforced before any OS call.
func ValidateName(name string) error {
	switch {
	case len(name) < types.MinNameLen:
		return nameError(name, "name must be at least 2 characters")
	case len(name) > types.MaxNameLen:
		return nameError(name, "name exceeds maximum length")
	case name[0] != '/':
		return nameError(name, "name must begin with '/'")
	case strings.ContainsRune(name[1:], '/'):
		return nameError(name, "name must not contain '/' after the first character")
	case !utf8.ValidString(name):
		return nameError(name, "name must be valid UTF-8")
	}
	return nil
}

func nameError(name, msg string) *types.Error {
	return &types.Error{Kind: types.ErrKindArgument, Op: "validate", Name: name, Msg: msg}
}
