//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform metrics or debug probe integrations.

package control

import (
	"runtime"

	"github.com/momentics/spinreact/internal/concurrency"
	"github.com/momentics/spinreact/internal/shm"
	"github.com/momentics/spinreact/signal"
)

// RegisterPlatformProbes sets Linux-specific debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.allowed_cpus", func() any {
		return concurrency.AllowedCPUs()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		return shm.PageSize()
	})
	dp.RegisterProbe("platform.cache_line", func() any {
		return signal.CacheLineSize
	})
	dp.RegisterProbe("platform.shm_dir", func() any {
		return shm.Dir
	})
}
