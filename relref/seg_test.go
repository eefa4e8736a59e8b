package relref

import (
	"testing"
	"unsafe"

	"github.com/joshuapare/shmkit/basereg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test tags. Each test family binds its own slot so tests cannot observe one
// another's bases.
type tagA struct{}

func (tagA) TagIndex() uint8 { return 1 }

type tagB struct{}

func (tagB) TagIndex() uint8 { return 2 }

type tagUnbound struct{}

func (tagUnbound) TagIndex() uint8 { return 3 }

// regionWord returns the address of the uint64 at byte offset off in region.
func regionWord(region []byte, off int) *uint64 {
	return (*uint64)(unsafe.Pointer(&region[off]))
}

// TestSeg_ZeroValueIsNull tests that the zero reference is null.
func TestSeg_ZeroValueIsNull(t *testing.T) {
	var r Seg[uint64, tagA, int32]
	assert.True(t, r.IsNil(), "zero value should be null")
	assert.Nil(t, r.Get(), "null should decode to nil without a bound base")
	assert.Zero(t, r.Raw(), "null should store 0")
}

// TestSeg_SetGet tests a round trip through the bound base.
func TestSeg_SetGet(t *testing.T) {
	region := make([]byte, 4096)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	target := regionWord(region, 64)
	*target = 0xDEADBEEF

	var r Seg[uint64, tagA, int32]
	require.NoError(t, r.Set(target), "Set should succeed")

	assert.False(t, r.IsNil())
	assert.Same(t, target, r.Get(), "Get should decode to the target address")
	assert.EqualValues(t, 65, r.Raw(), "stored form should be displacement+1")
}

// TestSeg_SetNil tests that Set(nil) yields the null reference.
func TestSeg_SetNil(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	var r Seg[uint64, tagA, int32]
	require.NoError(t, r.Set(regionWord(region, 0)))
	require.NoError(t, r.Set(nil))
	assert.True(t, r.IsNil())
}

// TestSeg_BytewiseRelocation tests that a stored reference decodes correctly
// after the whole region is copied elsewhere and the tag rebound.
func TestSeg_BytewiseRelocation(t *testing.T) {
	regionA := make([]byte, 4096)
	basereg.BindTagBytes[tagA](regionA)
	defer basereg.Unbind(tagA{}.TagIndex())

	*regionWord(regionA, 256) = 42
	r := MustEncodeSeg[uint64, tagA, int32](regionWord(regionA, 256))

	regionB := make([]byte, 4096)
	copy(regionB, regionA)
	basereg.BindTagBytes[tagA](regionB)

	got := r.Get()
	assert.Same(t, regionWord(regionB, 256), got, "reference should follow the rebound base")
	assert.Equal(t, uint64(42), *got, "copied bytes should carry the value")
}

// TestSeg_TagsAreIndependent tests that two tags decode through their own
// bases even with equal stored offsets.
func TestSeg_TagsAreIndependent(t *testing.T) {
	regionA := make([]byte, 1024)
	regionB := make([]byte, 1024)
	basereg.BindTagBytes[tagA](regionA)
	basereg.BindTagBytes[tagB](regionB)
	defer basereg.Unbind(tagA{}.TagIndex())
	defer basereg.Unbind(tagB{}.TagIndex())

	ra := MustEncodeSeg[uint64, tagA, int32](regionWord(regionA, 8))
	rb := FromRaw[uint64, tagB, int32](ra.Raw())

	assert.Same(t, regionWord(regionA, 8), ra.Get())
	assert.Same(t, regionWord(regionB, 8), rb.Get())
}

// TestSeg_UnboundTagPanics tests that decoding a non-null reference with no
// bound base panics instead of fabricating an address.
func TestSeg_UnboundTagPanics(t *testing.T) {
	r := FromRaw[uint64, tagUnbound, int32](9)
	require.Panics(t, func() { r.Get() }, "decode through an unbound tag should panic")
}

// TestSeg_NullCollision tests that the single displacement whose encoding
// would equal the null sentinel is rejected.
func TestSeg_NullCollision(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTag[tagA](unsafe.Pointer(&region[1]))
	defer basereg.Unbind(tagA{}.TagIndex())

	var r Seg[byte, tagA, int32]
	err := r.Set(&region[0]) // displacement -1
	require.ErrorIs(t, err, ErrNullCollision)
	assert.True(t, r.IsNil(), "failed Set should leave the reference unchanged")
}

// TestSeg_RangeError tests that a displacement too wide for the offset type
// is rejected rather than truncated.
func TestSeg_RangeError(t *testing.T) {
	region := make([]byte, 4096)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	var r Seg[byte, tagA, int8]
	err := r.Set(&region[300])
	require.ErrorIs(t, err, ErrRange)
}

// TestSeg_NegativeError tests that unsigned offset types reject backward
// displacements.
func TestSeg_NegativeError(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTag[tagA](unsafe.Pointer(&region[64]))
	defer basereg.Unbind(tagA{}.TagIndex())

	var r Seg[byte, tagA, uint16]
	err := r.Set(&region[0])
	require.ErrorIs(t, err, ErrNegative)
}

// TestSeg_SignedBackward tests that signed offset types reach backward.
func TestSeg_SignedBackward(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTag[tagA](unsafe.Pointer(&region[64]))
	defer basereg.Unbind(tagA{}.TagIndex())

	var r Seg[byte, tagA, int16]
	require.NoError(t, r.Set(&region[16])) // displacement -48
	assert.Same(t, &region[16], r.Get())
}

// TestSeg_OffsetWidths tests round trips across narrow and wide offset types.
func TestSeg_OffsetWidths(t *testing.T) {
	region := make([]byte, 256)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	t.Run("int8", func(t *testing.T) {
		r := MustEncodeSeg[byte, tagA, int8](&region[100])
		assert.Same(t, &region[100], r.Get())
	})
	t.Run("uint8", func(t *testing.T) {
		r := MustEncodeSeg[byte, tagA, uint8](&region[200])
		assert.Same(t, &region[200], r.Get())
	})
	t.Run("int64", func(t *testing.T) {
		r := MustEncodeSeg[byte, tagA, int64](&region[255])
		assert.Same(t, &region[255], r.Get())
	})
	t.Run("uint64", func(t *testing.T) {
		r := MustEncodeSeg[byte, tagA, uint64](&region[0])
		assert.Same(t, &region[0], r.Get())
	})
}

// TestSeg_Equal tests stored-form equality.
func TestSeg_Equal(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	a := MustEncodeSeg[byte, tagA, int32](&region[8])
	b := MustEncodeSeg[byte, tagA, int32](&region[8])
	c := MustEncodeSeg[byte, tagA, int32](&region[16])
	var null1, null2 Seg[byte, tagA, int32]

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, null1.Equal(null2))
	assert.False(t, a.Equal(null1))
}

// TestSeg_FromRawRoundTrip tests Raw/FromRaw reconstitution.
func TestSeg_FromRawRoundTrip(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	orig := MustEncodeSeg[byte, tagA, uint32](&region[40])
	rebuilt := FromRaw[byte, tagA, uint32](orig.Raw())
	assert.Same(t, orig.Get(), rebuilt.Get())
}

// TestCast tests that Cast reinterprets the element type without changing the
// decoded address.
func TestCast(t *testing.T) {
	region := make([]byte, 128)
	basereg.BindTagBytes[tagA](region)
	defer basereg.Unbind(tagA{}.TagIndex())

	rb := MustEncodeSeg[byte, tagA, int32](&region[32])
	rw := Cast[uint64](rb)
	assert.Equal(t, rb.Pointer(), rw.Pointer(), "cast should preserve the address")
}

// TestPointerFree tests the resident-type gate.
func TestPointerFree(t *testing.T) {
	type flat struct {
		A uint64
		B [4]int32
	}
	type withPointer struct {
		P *int
	}
	type withSlice struct {
		S []byte
	}
	type nested struct {
		F flat
		W withPointer
	}

	assert.True(t, PointerFree[flat]())
	assert.True(t, PointerFree[Seg[flat, tagA, int32]]())
	assert.False(t, PointerFree[withPointer]())
	assert.False(t, PointerFree[withSlice]())
	assert.False(t, PointerFree[nested]())
	assert.False(t, PointerFree[string]())
}
