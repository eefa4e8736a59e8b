//go:build !unix && !windows

package sysshm

import "github.com/joshuapare/shmkit/pkg/types"

// No shared-memory backend on this platform.

type platformObject struct{}

func Create(string, int64) (*Object, error) { return nil, types.ErrUnsupported }
func Open(string) (*Object, error)          { return nil, types.ErrUnsupported }
func (o *Object) Size() (int64, error)      { return 0, types.ErrUnsupported }
func (o *Object) Map(int64) ([]byte, error) { return nil, types.ErrUnsupported }
func Unmap([]byte) error                    { return nil }
func (o *Object) Close() error              { return nil }
func Unlink(string) error                   { return types.ErrUnsupported }
func Advise([]byte)                         {}
func List() ([]string, error)               { return nil, nil }
