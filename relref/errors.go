package relref

import "errors"

var (
	// ErrRange indicates a displacement that does not fit the offset type.
	ErrRange = errors.New("relref: displacement does not fit offset type")

	// ErrNegative indicates a negative displacement with an unsigned offset type.
	ErrNegative = errors.New("relref: negative displacement with unsigned offset type")

	// ErrNullCollision indicates a displacement of exactly -1, whose encoded
	// form is the reserved null value.
	ErrNullCollision = errors.New("relref: displacement -1 collides with the null encoding")
)
