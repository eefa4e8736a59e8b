package arena

import (
	"testing"
	"unsafe"

	"github.com/joshuapare/shmkit/basereg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type typedTag struct{}

func (typedTag) TagIndex() uint8 { return 11 }

type pair struct {
	A uint64
	B uint64
}

// TestAllocate_Typed tests element-typed reservation.
func TestAllocate_Typed(t *testing.T) {
	a, err := New(4096)
	require.NoError(t, err)

	s, err := Allocate[pair](a, 8)
	require.NoError(t, err)
	require.Len(t, s, 8)

	addr := uintptr(unsafe.Pointer(&s[0]))
	assert.Zero(t, addr%unsafe.Alignof(pair{}), "storage should be aligned for the element type")

	s[0] = pair{A: 1, B: 2}
	s[7] = pair{A: 3, B: 4}
	assert.Equal(t, pair{A: 1, B: 2}, s[0])
}

// TestAllocate_CountErrors tests count validation.
func TestAllocate_CountErrors(t *testing.T) {
	a, err := New(128)
	require.NoError(t, err)

	_, err = Allocate[pair](a, 0)
	require.ErrorIs(t, err, ErrCount)

	_, err = Allocate[pair](a, -3)
	require.ErrorIs(t, err, ErrCount)
}

// TestAllocate_Overflow tests the byte-size overflow guard.
func TestAllocate_Overflow(t *testing.T) {
	a, err := New(128)
	require.NoError(t, err)

	_, err = Allocate[pair](a, 1<<61)
	require.ErrorIs(t, err, ErrOverflow)
}

// TestAllocate_RejectsPointerElements tests the resident-type gate.
func TestAllocate_RejectsPointerElements(t *testing.T) {
	a, err := New(4096)
	require.NoError(t, err)

	_, err = Allocate[*uint64](a, 1)
	require.ErrorIs(t, err, ErrElemType)

	type holder struct {
		S []byte
	}
	_, err = Allocate[holder](a, 1)
	require.ErrorIs(t, err, ErrElemType)

	before := a.Used()
	_, err = Allocate[string](a, 2)
	require.ErrorIs(t, err, ErrElemType)
	assert.Equal(t, before, a.Used(), "rejected allocation should not consume space")
}

// TestAllocate_ZeroSizeElem tests rejection of zero-size element types.
func TestAllocate_ZeroSizeElem(t *testing.T) {
	a, err := New(128)
	require.NoError(t, err)

	_, err = Allocate[struct{}](a, 4)
	require.ErrorIs(t, err, ErrZeroSize)
}

// TestMake_HandleDecodes tests that Make stores the value and the returned
// handle decodes to it through the bound tag.
func TestMake_HandleDecodes(t *testing.T) {
	region := make([]byte, 4096)
	basereg.BindTagBytes[typedTag](region)
	defer basereg.Unbind(typedTag{}.TagIndex())

	a, err := Init(region)
	require.NoError(t, err)

	h, err := Make[pair, typedTag, int32](a, pair{A: 10, B: 20})
	require.NoError(t, err)
	require.False(t, h.IsNil())

	p := h.Get()
	assert.Equal(t, pair{A: 10, B: 20}, *p)
	assert.True(t, a.Owns(unsafe.Pointer(p)))
}

// TestAllocateHandle tests handle-returning array reservation.
func TestAllocateHandle(t *testing.T) {
	region := make([]byte, 4096)
	basereg.BindTagBytes[typedTag](region)
	defer basereg.Unbind(typedTag{}.TagIndex())

	a, err := Init(region)
	require.NoError(t, err)

	h, err := AllocateHandle[uint64, typedTag, uint32](a, 16)
	require.NoError(t, err)

	p := h.Get()
	require.NotNil(t, p)
	s := unsafe.Slice(p, 16)
	s[15] = 0xFEED
	assert.Equal(t, uint64(0xFEED), s[15])
}

// TestAllocHandle_Raw tests the untyped handle path.
func TestAllocHandle_Raw(t *testing.T) {
	region := make([]byte, 4096)
	basereg.BindTagBytes[typedTag](region)
	defer basereg.Unbind(typedTag{}.TagIndex())

	a, err := Init(region)
	require.NoError(t, err)

	h, err := AllocHandle[typedTag, uint32](a, 100, 64)
	require.NoError(t, err)
	assert.Zero(t, uintptr(h.Pointer())%64, "handle should decode to an aligned address")
}

// TestMake_FailurePassthrough tests that allocation failure surfaces from Make.
func TestMake_FailurePassthrough(t *testing.T) {
	region := make([]byte, HeaderSize+8)
	basereg.BindTagBytes[typedTag](region)
	defer basereg.Unbind(typedTag{}.TagIndex())

	a, err := Init(region)
	require.NoError(t, err)

	_, err = Make[pair, typedTag, int32](a, pair{})
	require.ErrorIs(t, err, ErrFull)
}
