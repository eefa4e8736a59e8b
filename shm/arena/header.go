package arena

import (
	"sync/atomic"
	"unsafe"
)

const (
	// HeaderSize is the resident control block size. Fixed at one cache line
	// so the data area starts 64-byte aligned within the region.
	HeaderSize = 64

	// Version is the control block layout version.
	Version = 1

	// arenaMagic is "SHMARENA" read as a little-endian uint64.
	arenaMagic = 0x414e4552414d4853
)

// header is the resident control block at the front of the region.
//
// capacity is immutable after Init. cursor counts bytes reserved from the
// data area since the last reset; 0 <= cursor <= capacity always. The cursor
// is the single authoritative allocation state: every process that wants to
// share the arena must operate on this block, not a private copy.
type header struct {
	magic    uint64
	version  uint32
	_        uint32
	capacity uint64
	cursor   atomic.Uint64
	_        [HeaderSize - 32]byte
}

func headerAt(region []byte) *header {
	return (*header)(unsafe.Pointer(&region[0]))
}

// Init formats a resident control block at region[0] and returns an arena
// over the remaining bytes. The caller must be the only initializer; openers
// of an already-formatted region use Attach.
func Init(region []byte) (*Arena, error) {
	if len(region) < HeaderSize+1 {
		return nil, ErrRegionSmall
	}
	h := headerAt(region)
	h.version = Version
	h.capacity = uint64(len(region) - HeaderSize)
	h.cursor.Store(0)
	// Magic goes in last so a concurrent Attach never adopts a half-written
	// block.
	atomic.StoreUint64(&h.magic, arenaMagic)
	return fromRegion(region, h), nil
}

// Attach adopts an existing control block at region[0], validating magic,
// version, and that the recorded capacity fits the mapped region. It does not
// detect other arenas formatted over overlapping bytes.
func Attach(region []byte) (*Arena, error) {
	if len(region) < HeaderSize+1 {
		return nil, ErrRegionSmall
	}
	h := headerAt(region)
	if atomic.LoadUint64(&h.magic) != arenaMagic {
		return nil, ErrNotArena
	}
	if h.version != Version {
		return nil, ErrVersion
	}
	if h.capacity > uint64(len(region)-HeaderSize) {
		return nil, ErrCapacity
	}
	return fromRegion(region, h), nil
}

// New builds a private, single-process arena over a fresh heap buffer of the
// given data capacity. The control block still lives inside the buffer, so
// the layout matches the shared case byte for byte.
func New(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, ErrRegionSmall
	}
	buf := make([]byte, HeaderSize+capacity)
	return Init(buf)
}

func fromRegion(region []byte, h *header) *Arena {
	return &Arena{
		h:      h,
		base:   unsafe.Pointer(&region[HeaderSize]),
		region: region,
	}
}
