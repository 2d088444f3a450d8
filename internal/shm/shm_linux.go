//go:build linux

// File: internal/shm/shm_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation backed by tmpfs files under /dev/shm.

package shm

import (
	"errors"
	"path/filepath"

	"github.com/momentics/spinreact/api"
	"golang.org/x/sys/unix"
)

// Dir is the tmpfs mount shm_open(3) uses on Linux.
var Dir = "/dev/shm"

// SegmentPath resolves a shm_open style name to its backing file.
func SegmentPath(name string) (string, error) {
	base, err := normalizeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(Dir, base), nil
}

// Open attaches read-write to an existing segment and maps exactly size
// bytes. A segment of length zero (created but not yet sized by its
// producer) is truncated to size; any other length mismatch is rejected.
func Open(name string, size int) (*Region, error) {
	path, err := SegmentPath(name)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0)
	if err != nil {
		return nil, api.NewError(api.ErrCodeSignalUnavailable, "shm open failed").
			WithContext("path", path).Wrap(err)
	}
	// The mapping keeps the segment referenced; the descriptor is not needed.
	defer unix.Close(fd)

	if err := ensureSize(fd, path, size); err != nil {
		return nil, err
	}
	return mapShared(fd, name, path, size)
}

// Create opens or creates a segment with the given permission bits and sizes
// it to size bytes. Existing contents beyond size are discarded.
func Create(name string, size int, mode uint32) (*Region, error) {
	path, err := SegmentPath(name)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_CLOEXEC|unix.O_NOFOLLOW, mode)
	if err != nil {
		return nil, api.NewError(api.ErrCodeSignalUnavailable, "shm create failed").
			WithContext("path", path).Wrap(err)
	}
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, api.NewError(api.ErrCodeRegionSizeMismatch, "ftruncate failed").
			WithContext("path", path).WithContext("size", size).Wrap(err)
	}
	return mapShared(fd, name, path, size)
}

// Unlink removes the segment name. Mappings that are still open stay valid.
// Removing a segment that does not exist is not an error.
func Unlink(name string) error {
	path, err := SegmentPath(name)
	if err != nil {
		return err
	}
	if err := unix.Unlink(path); err != nil && !errors.Is(err, unix.ENOENT) {
		return api.NewError(api.ErrCodeSignalUnavailable, "shm unlink failed").
			WithContext("path", path).Wrap(err)
	}
	return nil
}

func ensureSize(fd int, path string, size int) error {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return api.NewError(api.ErrCodeRegionSizeMismatch, "fstat failed").
			WithContext("path", path).Wrap(err)
	}
	switch st.Size {
	case int64(size):
		return nil
	case 0:
		if err := unix.Ftruncate(fd, int64(size)); err != nil {
			return api.NewError(api.ErrCodeRegionSizeMismatch, "ftruncate failed").
				WithContext("path", path).WithContext("size", size).Wrap(err)
		}
		return nil
	default:
		return api.NewError(api.ErrCodeRegionSizeMismatch, "segment is not the expected size").
			WithContext("path", path).
			WithContext("size", st.Size).
			WithContext("expected", size)
	}
}

func mapShared(fd int, name, path string, size int) (*Region, error) {
	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, api.NewError(api.ErrCodeMappingFailed, "mmap failed").
			WithContext("path", path).WithContext("size", size).Wrap(err)
	}
	return &Region{name: name, path: path, mem: mem, unmap: unix.Munmap}, nil
}
