//go:build !linux
// +build !linux

// control/platform_other.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"runtime"

	"github.com/momentics/spinreact/internal/shm"
	"github.com/momentics/spinreact/signal"
)

// RegisterPlatformProbes sets the probes available everywhere.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		return shm.PageSize()
	})
	dp.RegisterProbe("platform.cache_line", func() any {
		return signal.CacheLineSize
	})
}
