package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsPow2 tests the power-of-two predicate.
func TestIsPow2(t *testing.T) {
	assert.False(t, IsPow2(0), "zero is not a power of two")
	assert.True(t, IsPow2(1))
	assert.True(t, IsPow2(2))
	assert.True(t, IsPow2(4096))
	assert.True(t, IsPow2(1<<32))
	assert.False(t, IsPow2(3))
	assert.False(t, IsPow2(6))
	assert.False(t, IsPow2(4097))
}

// TestUp tests rounding across the fast and slow paths.
func TestUp(t *testing.T) {
	cases := []struct {
		addr, a, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{13, 8, 16},
		{16, 8, 16},
		{100, 64, 128},
		{10, 24, 24}, // non-power-of-two alignment
		{24, 24, 24},
		{25, 24, 48},
		{7, 0, 7}, // a == 0 treated as 1
		{7, 1, 7},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Up(c.addr, c.a), "Up(%d, %d)", c.addr, c.a)
	}
}

// TestUp_AlreadyAligned tests that aligned inputs are fixed points.
func TestUp_AlreadyAligned(t *testing.T) {
	for _, a := range []uintptr{1, 2, 8, 64, 4096} {
		for mult := uintptr(0); mult < 5; mult++ {
			addr := mult * a
			assert.Equal(t, addr, Up(addr, a), "Up(%d, %d)", addr, a)
		}
	}
}

// TestUpInt tests the int wrapper.
func TestUpInt(t *testing.T) {
	assert.Equal(t, 16, UpInt(13, 8))
	assert.Equal(t, 0, UpInt(0, 64))
	assert.Equal(t, 4096, UpInt(1, 4096))
}
