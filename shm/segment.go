package shm

import (
	"errors"
	"io/fs"
	"time"
	"unsafe"

	"github.com/joshuapare/shmkit/basereg"
	"github.com/joshuapare/shmkit/internal/sysshm"
	"github.com/joshuapare/shmkit/pkg/types"
)

// Size-retry parameters for the open path. Creation and sizing are two OS
// calls on the creator side, so an opener can observe the name with size 0;
// it waits with exponential backoff until the creator's truncate lands.
const (
	sizeRetryAttempts = 200
	sizeRetryStart    = 50 * time.Microsecond
	sizeRetryCap      = 10 * time.Millisecond
)

// Segment is a mapped view of a named shared byte region. The mapping is
// process-local; the bytes are shared.
type Segment struct {
	name    string
	data    []byte
	created bool
	obj     *sysshm.Object
}

// Open creates or opens the named segment per mode. size is in bytes; see
// the Mode constants for how each mode interprets it.
func Open(name string, mode Mode, size int64) (*Segment, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if size < 0 || size > types.MaxSegmentSize {
		return nil, &types.Error{Kind: types.ErrKindArgument, Op: "open", Name: name,
			Msg: "size out of range"}
	}
	switch mode {
	case CreateOnly:
		return create(name, size)
	case OpenOnly:
		return open(name, size)
	case OpenOrCreate:
		// Open first, create on absence; loop because another process can
		// win either race.
		for {
			s, err := open(name, size)
			if !errors.Is(err, types.ErrNotFound) {
				return s, err
			}
			s, err = create(name, size)
			if !errors.Is(err, types.ErrExists) {
				return s, err
			}
		}
	default:
		return nil, &types.Error{Kind: types.ErrKindArgument, Op: "open", Name: name,
			Msg: "unknown open mode"}
	}
}

// create runs the create path: exclusive create at the requested size, map,
// zero-fill, record created=true. Any failure after the OS object exists
// unwinds completely (unmap, close, unlink) before the error surfaces.
func create(name string, size int64) (*Segment, error) {
	if size == 0 {
		return nil, &types.Error{Kind: types.ErrKindArgument, Op: "create", Name: name,
			Msg: types.ErrZeroSize.Msg}
	}
	obj, err := sysshm.Create(name, size)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &types.Error{Kind: types.ErrKindExists, Op: "create", Name: name,
				Msg: types.ErrExists.Msg, Err: err}
		}
		return nil, types.WrapOS("create", name, err)
	}
	data, err := obj.Map(size)
	if err != nil {
		obj.Close()
		sysshm.Unlink(name)
		return nil, types.WrapOS("map", name, err)
	}
	// The exposed prefix starts zeroed regardless of what the backing store
	// guarantees.
	clear(data)
	sysshm.Advise(data)
	return &Segment{name: name, data: data, created: true, obj: obj}, nil
}

// open runs the open path: open the name, wait out the creator's sizing
// window, check the requested minimum, map the existing size.
func open(name string, reqSize int64) (*Segment, error) {
	obj, err := sysshm.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &types.Error{Kind: types.ErrKindNotFound, Op: "open", Name: name,
				Msg: types.ErrNotFound.Msg, Err: err}
		}
		return nil, types.WrapOS("open", name, err)
	}
	size, err := waitForSize(obj)
	if err != nil {
		obj.Close()
		if e := new(types.Error); errors.As(err, &e) {
			e.Name = name
			return nil, e
		}
		return nil, types.WrapOS("stat", name, err)
	}
	if reqSize > 0 && size < reqSize {
		obj.Close()
		return nil, &types.Error{Kind: types.ErrKindCapacity, Op: "open", Name: name,
			Msg: types.ErrTooSmall.Msg}
	}
	data, err := obj.Map(size)
	if err != nil {
		obj.Close()
		return nil, types.WrapOS("map", name, err)
	}
	sysshm.Advise(data)
	return &Segment{name: name, data: data, created: false, obj: obj}, nil
}

// waitForSize polls the object's size until it becomes non-zero, with
// exponential backoff bounded by sizeRetryAttempts.
func waitForSize(obj *sysshm.Object) (int64, error) {
	delay := sizeRetryStart
	for attempt := 0; attempt < sizeRetryAttempts; attempt++ {
		size, err := obj.Size()
		if err != nil {
			return 0, err
		}
		if size > 0 {
			return size, nil
		}
		time.Sleep(delay)
		delay *= 2
		if delay > sizeRetryCap {
			delay = sizeRetryCap
		}
	}
	return 0, &types.Error{Kind: types.ErrKindResource, Op: "open",
		Msg: types.ErrSizeTimeout.Msg}
}

// Bytes returns the mapped region. The slice is only valid until Close.
func (s *Segment) Bytes() []byte { return s.data }

// Base returns the mapping's base address in this process.
func (s *Segment) Base() unsafe.Pointer {
	if len(s.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&s.data[0])
}

// Size returns the mapped byte count.
func (s *Segment) Size() int64 { return int64(len(s.data)) }

// Name returns the portable name.
func (s *Segment) Name() string { return s.name }

// Created reports whether this process created the segment in this Open.
func (s *Segment) Created() bool { return s.created }

// Bind installs this mapping's base into the per-process registry slot, so
// segment-anchored references under that tag decode against this mapping.
func (s *Segment) Bind(index uint8) {
	basereg.Bind(index, s.Base())
}

// BindTag is the typed form of (*Segment).Bind.
func BindTag[G basereg.Tag](s *Segment) {
	basereg.BindTag[G](s.Base())
}

// Close unmaps the region and closes the underlying object. It does not
// remove the name; use Remove for that. Close is idempotent.
func (s *Segment) Close() error {
	if s.data == nil && s.obj == nil {
		return nil
	}
	var first error
	if err := sysshm.Unmap(s.data); err != nil {
		first = types.WrapOS("unmap", s.name, err)
	}
	s.data = nil
	if s.obj != nil {
		if err := s.obj.Close(); err != nil && first == nil {
			first = types.WrapOS("close", s.name, err)
		}
		s.obj = nil
	}
	return first
}

// Remove unlinks the name from the namespace. Existing mappings stay valid
// until their owners close them. On platforms whose object lifetime is tied
// to open handles (Windows sections) this is a no-op.
func Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := sysshm.Unlink(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &types.Error{Kind: types.ErrKindNotFound, Op: "remove", Name: name,
				Msg: types.ErrNotFound.Msg, Err: err}
		}
		return types.WrapOS("remove", name, err)
	}
	return nil
}

// List returns the portable names currently present in the platform
// namespace, where the platform can enumerate them.
func List() ([]string, error) {
	return sysshm.List()
}
