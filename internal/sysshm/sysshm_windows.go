//go:build windows

package sysshm

import (
	"io/fs"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows named sections live in the session's Local namespace and die with
// their last open handle; there is no unlink. The portable leading '/' maps
// onto a "Local\shmkit." prefix.

type platformObject struct {
	handle windows.Handle
}

func nativeName(name string) string {
	return `Local\shmkit.` + name[1:]
}

// Create exclusively creates a named section of the given maximum size.
// CreateFileMapping opens an existing section and reports
// ERROR_ALREADY_EXISTS; exclusive create turns that into fs.ErrExist.
func Create(name string, size int64) (*Object, error) {
	namep, err := windows.UTF16PtrFromString(nativeName(name))
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFileMapping(
		windows.InvalidHandle, nil, windows.PAGE_READWRITE,
		uint32(uint64(size)>>32), uint32(uint64(size)&0xffffffff), namep)
	if err != nil {
		return nil, err
	}
	if windows.GetLastError() == windows.ERROR_ALREADY_EXISTS {
		windows.CloseHandle(h)
		return nil, fs.ErrExist
	}
	return &Object{platformObject{handle: h}}, nil
}

// Open opens an existing named section.
func Open(name string) (*Object, error) {
	namep, err := windows.UTF16PtrFromString(nativeName(name))
	if err != nil {
		return nil, err
	}
	h, err := windows.OpenFileMapping(windows.FILE_MAP_READ|windows.FILE_MAP_WRITE, 0, namep)
	if err != nil {
		if err == windows.ERROR_FILE_NOT_FOUND {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	return &Object{platformObject{handle: h}}, nil
}

// Size maps a whole-section view and asks the VM manager for its size. The
// result is page-rounded, which is what the section actually exposes.
func (o *Object) Size() (int64, error) {
	addr, err := windows.MapViewOfFile(o.handle, windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		return 0, err
	}
	defer windows.UnmapViewOfFile(addr)
	var info windows.MemoryBasicInformation
	if err := windows.VirtualQuery(addr, &info, unsafe.Sizeof(info)); err != nil {
		return 0, err
	}
	return int64(info.RegionSize), nil
}

// Map maps size bytes of the section read-write.
func (o *Object) Map(size int64) ([]byte, error) {
	addr, err := windows.MapViewOfFile(
		o.handle, windows.FILE_MAP_READ|windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// Unmap releases a view returned by Map.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&data[0])))
}

// Close releases the section handle.
func (o *Object) Close() error {
	return windows.CloseHandle(o.handle)
}

// Unlink is a no-op: section lifetime is tied to open handles, not a
// namespace entry.
func Unlink(string) error { return nil }

// Advise is a no-op on Windows.
func Advise([]byte) {}

// List is unavailable: the object namespace is not enumerable through the
// documented API surface this package uses.
func List() ([]string, error) { return nil, nil }
