// File: internal/shm/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shm

import (
	"strings"
	"sync"

	"github.com/momentics/spinreact/api"
)

// nameMax mirrors NAME_MAX for a single /dev/shm path component.
const nameMax = 255

// Region is a mapped shared memory view.
type Region struct {
	name  string
	path  string
	mem   []byte
	once  sync.Once
	unmap func([]byte) error
}

// Bytes returns the mapped memory. The slice is only valid until Close.
func (r *Region) Bytes() []byte { return r.mem }

// Name returns the segment name the region was opened with ("" if anonymous).
func (r *Region) Name() string { return r.name }

// Path returns the backing file path ("" if anonymous).
func (r *Region) Path() string { return r.path }

// Size returns the mapped length in bytes.
func (r *Region) Size() int { return len(r.mem) }

// Close unmaps the region. It is safe to call more than once. The reactor
// never calls it; its mapping lives until the process exits.
func (r *Region) Close() error {
	var err error
	r.once.Do(func() {
		if r.unmap != nil {
			err = r.unmap(r.mem)
		}
		r.mem = nil
	})
	return err
}

// normalizeName validates a shm_open style name and returns the bare file
// name. A single leading slash is accepted and stripped.
func normalizeName(name string) (string, error) {
	base := strings.TrimPrefix(name, "/")
	switch {
	case base == "", base == ".", base == "..":
		return "", invalidName(name, "empty or reserved name")
	case strings.ContainsRune(base, '/'):
		return "", invalidName(name, "name must not contain '/' after the leading slash")
	case strings.ContainsRune(base, 0):
		return "", invalidName(name, "name must not contain NUL")
	case len(base) > nameMax:
		return "", invalidName(name, "name too long")
	}
	return base, nil
}

func invalidName(name, reason string) error {
	return api.NewError(api.ErrCodeInvalidArgument, reason).WithContext("name", name)
}
