package api_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/momentics/spinreact/api"
	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesSentinelByCode(t *testing.T) {
	err := api.NewError(api.ErrCodeSignalUnavailable, "open /dev/shm/spinnmem").
		WithContext("name", "/spinnmem").
		Wrap(fs.ErrNotExist)

	assert.ErrorIs(t, err, api.ErrSignalUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, api.ErrMappingFailed)

	wrapped := fmt.Errorf("attach: %w", err)
	assert.ErrorIs(t, wrapped, api.ErrSignalUnavailable)
	assert.Equal(t, api.ErrCodeSignalUnavailable, api.CodeOf(wrapped))
}

func TestError_Message(t *testing.T) {
	err := api.NewError(api.ErrCodeRegionSizeMismatch, "segment has wrong size").
		WithContext("size", 100)
	msg := err.Error()
	assert.Contains(t, msg, "region size mismatch: segment has wrong size")
	assert.Contains(t, msg, "size:100")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, api.ErrCodeOK, api.CodeOf(nil))
	assert.Equal(t, api.ErrCodeInternal, api.CodeOf(errors.New("plain")))
	assert.Equal(t, api.ErrCodeAffinityAssignmentFailed,
		api.CodeOf(api.NewError(api.ErrCodeAffinityAssignmentFailed, "pin")))
}

func TestHandlerFunc(t *testing.T) {
	var got uint64
	var h api.Handler = api.HandlerFunc(func(v uint64) { got = v })
	h.Handle(11)
	assert.Equal(t, uint64(11), got)
}
