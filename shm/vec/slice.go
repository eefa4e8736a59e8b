package vec

import "unsafe"

// sliceAt views n elements starting at p as a slice.
func sliceAt[T any](p *T, n int) []T {
	return unsafe.Slice(p, n)
}
