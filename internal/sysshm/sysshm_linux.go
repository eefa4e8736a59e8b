//go:build linux

package sysshm

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// On Linux, POSIX shm objects are files under the tmpfs mount at /dev/shm;
// shm_open(3) is literally open(2) on that directory. Doing the open
// ourselves keeps the whole lifecycle inside x/sys/unix.
const shmDir = "/dev/shm"

type platformObject struct {
	fd int
}

func nativePath(name string) string {
	// Portable names carry a leading '/', which is not part of the file name.
	return filepath.Join(shmDir, name[1:])
}

// Create exclusively creates the named object and sizes it. The object
// exists in the namespace before the sizing write lands; openers handle that
// window with the size-retry loop.
func Create(name string, size int64) (*Object, error) {
	fd, err := unix.Open(nativePath(name), unix.O_CREAT|unix.O_EXCL|unix.O_RDWR|unix.O_CLOEXEC, 0o600)
	if err != nil {
		return nil, err
	}
	if err := unix.Ftruncate(fd, size); err != nil {
		unix.Close(fd)
		unix.Unlink(nativePath(name))
		return nil, err
	}
	return &Object{platformObject{fd: fd}}, nil
}

// Open opens an existing named object.
func Open(name string) (*Object, error) {
	fd, err := unix.Open(nativePath(name), unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &Object{platformObject{fd: fd}}, nil
}

// Size returns the object's current size.
func (o *Object) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(o.fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}

// Map maps size bytes of the object read-write shared.
func (o *Object) Map(size int64) ([]byte, error) {
	return unix.Mmap(o.fd, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// Unmap releases a mapping returned by Map.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}

// Close releases the descriptor. The name stays in the namespace.
func (o *Object) Close() error {
	return unix.Close(o.fd)
}

// Unlink removes the name from the namespace. Existing mappings survive.
func Unlink(name string) error {
	return unix.Unlink(nativePath(name))
}

// Advise applies the advisory hints segments want: keep the bytes out of
// core dumps, and ask for huge pages on large mappings. Both are best
// effort; failures are ignored.
func Advise(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_DONTDUMP)
	if len(data) >= 2<<20 {
		_ = unix.Madvise(data, unix.MADV_HUGEPAGE)
	}
}

// List returns the portable names of all objects currently in the
// namespace.
func List() ([]string, error) {
	entries, err := os.ReadDir(shmDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, "/"+e.Name())
	}
	return names, nil
}
