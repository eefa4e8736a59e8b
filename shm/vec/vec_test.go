package vec

import (
	"fmt"
	"os"
	"testing"

	"github.com/joshuapare/shmkit/basereg"
	"github.com/joshuapare/shmkit/relref"
	"github.com/joshuapare/shmkit/shm"
	"github.com/joshuapare/shmkit/shm/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vecTag struct{}

func (vecTag) TagIndex() uint8 { return 20 }

type u64Vec = Vec[uint64, vecTag, int32]

// newTestVec formats an arena over a fresh bound region and allocates an
// empty vector in it.
func newTestVec(t *testing.T, size int) (*arena.Arena, relref.Seg[u64Vec, vecTag, int32]) {
	t.Helper()
	region := make([]byte, size)
	basereg.BindTagBytes[vecTag](region)
	t.Cleanup(func() { basereg.Unbind(vecTag{}.TagIndex()) })

	a, err := arena.Init(region)
	require.NoError(t, err)

	h, err := New[uint64, vecTag, int32](a)
	require.NoError(t, err)
	return a, h
}

// TestVec_Empty tests the freshly allocated state.
func TestVec_Empty(t *testing.T) {
	_, h := newTestVec(t, 4096)
	v := h.Get()

	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	assert.Empty(t, v.Slice())
	assert.True(t, v.DataHandle().IsNil())
}

// TestVec_PushAndAt tests appends and element access.
func TestVec_PushAndAt(t *testing.T) {
	a, h := newTestVec(t, 16384)
	v := h.Get()
	al := arena.NewTypedAllocator[uint64](a)

	for i := uint64(0); i < 100; i++ {
		require.NoError(t, v.Push(al, i*3))
	}

	assert.Equal(t, 100, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 100)
	for i := 0; i < 100; i++ {
		assert.Equal(t, uint64(i*3), *v.At(i), "element %d", i)
	}
	assert.Len(t, v.Slice(), 100)
}

// TestVec_GrowthDoubling tests the capacity schedule.
func TestVec_GrowthDoubling(t *testing.T) {
	a, h := newTestVec(t, 1<<16)
	v := h.Get()
	al := arena.NewTypedAllocator[uint64](a)

	require.NoError(t, v.Push(al, 1))
	assert.Equal(t, 4, v.Cap(), "first growth should reserve the minimum capacity")

	for i := 0; i < 4; i++ {
		require.NoError(t, v.Push(al, uint64(i)))
	}
	assert.Equal(t, 8, v.Cap(), "full vector should double")
}

// TestVec_GrowthPreservesElements tests the block move across backings.
func TestVec_GrowthPreservesElements(t *testing.T) {
	a, h := newTestVec(t, 1<<16)
	v := h.Get()
	al := arena.NewTypedAllocator[uint64](a)

	for i := uint64(0); i < 4; i++ {
		require.NoError(t, v.Push(al, i+100))
	}
	before := v.DataHandle()

	require.NoError(t, v.Push(al, 999))

	assert.False(t, v.DataHandle().Equal(before), "growth should move to fresh backing")
	for i := uint64(0); i < 4; i++ {
		assert.Equal(t, i+100, *v.At(int(i)))
	}
	assert.Equal(t, uint64(999), *v.At(4))
}

// TestVec_Reserve tests explicit capacity reservation.
func TestVec_Reserve(t *testing.T) {
	a, h := newTestVec(t, 1<<16)
	v := h.Get()
	al := arena.NewTypedAllocator[uint64](a)

	require.NoError(t, v.Reserve(al, 100))
	assert.GreaterOrEqual(t, v.Cap(), 100)
	assert.Zero(t, v.Len())

	used := a.Used()
	for i := uint64(0); i < 100; i++ {
		require.NoError(t, v.Push(al, i))
	}
	assert.Equal(t, used, a.Used(), "pushes within reserved capacity should not allocate")

	require.NoError(t, v.Reserve(al, 50), "shrinking reserve should be a no-op")
	require.NoError(t, v.Reserve(al, 0))
}

// TestVec_AtOutOfRangePanics tests index validation.
func TestVec_AtOutOfRangePanics(t *testing.T) {
	a, h := newTestVec(t, 4096)
	v := h.Get()
	al := arena.NewTypedAllocator[uint64](a)
	require.NoError(t, v.Push(al, 1))

	require.Panics(t, func() { v.At(-1) })
	require.Panics(t, func() { v.At(1) })
}

// TestVec_RejectsPointerElements tests the resident-type gate.
func TestVec_RejectsPointerElements(t *testing.T) {
	region := make([]byte, 4096)
	basereg.BindTagBytes[vecTag](region)
	defer basereg.Unbind(vecTag{}.TagIndex())

	a, err := arena.Init(region)
	require.NoError(t, err)

	_, err = New[*uint64, vecTag, int32](a)
	require.ErrorIs(t, err, arena.ErrElemType)
}

// TestVec_ByteCopyRelocation tests that copying the whole region relocates
// header, backing, and every element together.
func TestVec_ByteCopyRelocation(t *testing.T) {
	regionA := make([]byte, 1<<16)
	basereg.BindTagBytes[vecTag](regionA)
	defer basereg.Unbind(vecTag{}.TagIndex())

	a, err := arena.Init(regionA)
	require.NoError(t, err)
	h, err := New[uint64, vecTag, int32](a)
	require.NoError(t, err)

	al := arena.NewTypedAllocator[uint64](a)
	v := h.Get()
	for i := uint64(0); i < 500; i++ {
		require.NoError(t, v.Push(al, i*7))
	}

	regionB := make([]byte, len(regionA))
	copy(regionB, regionA)
	basereg.BindTagBytes[vecTag](regionB)

	relocated := h.Get()
	require.Equal(t, 500, relocated.Len())
	for i := 0; i < 500; i++ {
		require.Equal(t, uint64(i*7), *relocated.At(i), "element %d after relocation", i)
	}

	// Mutating the copy must not touch the original.
	*relocated.At(0) = 12345
	basereg.BindTagBytes[vecTag](regionA)
	assert.Equal(t, uint64(0), *h.Get().At(0))
}

// TestVec_ManyPushes tests a long append sequence with interleaved growth.
func TestVec_ManyPushes(t *testing.T) {
	const n = 10000

	a, h := newTestVec(t, 1<<21)
	v := h.Get()
	al := arena.NewTypedAllocator[uint64](a)

	for i := uint64(0); i < n; i++ {
		require.NoError(t, v.Push(al, i))
	}

	require.Equal(t, n, v.Len())
	s := v.Slice()
	for i := uint64(0); i < n; i++ {
		require.Equal(t, i, s[i], "element %d", i)
	}
}

// TestVec_SecondMapping tests that a vector built through one mapping of a
// shared segment reads identically through another mapping at a different
// base.
func TestVec_SecondMapping(t *testing.T) {
	name := fmt.Sprintf("/shmkit-vec-test-%d", os.Getpid())
	defer shm.Remove(name)

	writer, err := shm.Open(name, shm.CreateOnly, 1<<16)
	require.NoError(t, err)
	defer writer.Close()

	shm.BindTag[vecTag](writer)
	defer basereg.Unbind(vecTag{}.TagIndex())

	a, err := arena.Init(writer.Bytes())
	require.NoError(t, err)
	h, err := New[uint64, vecTag, int32](a)
	require.NoError(t, err)

	al := arena.NewTypedAllocator[uint64](a)
	for i := uint64(0); i < 50; i++ {
		require.NoError(t, h.Get().Push(al, i+1000))
	}

	reader, err := shm.Open(name, shm.OpenOnly, 0)
	require.NoError(t, err)
	defer reader.Close()

	// The second mapping of the same bytes lands at its own address.
	shm.BindTag[vecTag](reader)

	v := h.Get()
	require.Equal(t, 50, v.Len())
	for i := 0; i < 50; i++ {
		require.Equal(t, uint64(i+1000), *v.At(i))
	}
}
