//go:build unix && !linux

package sysshm

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Non-Linux Unixes hide shm_open behind libc, which x/sys/unix does not
// expose. File-backed mappings in a shared temp directory give the same
// create/open/map semantics; the pages just may touch disk under pressure.

type platformObject struct {
	fd int
}

func shmDir() string {
	return filepath.Join(os.TempDir(), "shmkit")
}

func nativePath(name string) string {
	return filepath.Join(shmDir(), name[1:])
}

func Create(name string, size int64) (*Object, error) {
	if err := os.MkdirAll(shmDir(), 0o700); err != nil {
		return nil, err
	}
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

func Open(name string) (*Object, error) {
	fd, err := unix.Open(nativePath(name), unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &Object{platformObject{fd: fd}}, nil
}

func (o *Object) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(o.fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}

func (o *Object) Map(size int64) ([]byte, error) {
	return unix.Mmap(o.fd, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}

func (o *Object) Close() error {
	return unix.Close(o.fd)
}

func Unlink(name string) error {
	return unix.Unlink(nativePath(name))
}

// Advise is a no-op here; MADV_DONTDUMP and transparent huge pages are
// Linux-specific.
func Advise([]byte) {}

func List() ([]string, error) {
	entries, err := os.ReadDir(shmDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, "/"+e.Name())
	}
	return names, nil
}
