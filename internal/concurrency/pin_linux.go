//go:build linux

// spinreact/internal/concurrency/pin_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific thread pinning via sched_setaffinity(2).

package concurrency

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const affinitySupported = true

// maxCPUs matches the kernel's CPU_SETSIZE as used by unix.CPUSet.
const maxCPUs = 1024

// initialMask is the affinity the process was started with (taskset, cgroup
// cpusets). Unpinning restores it instead of widening to every CPU.
var initialMask, initialMaskErr = processMask()

func processMask() (unix.CPUSet, error) {
	var set unix.CPUSet
	err := unix.SchedGetaffinity(0, &set)
	return set, err
}

// platformPinCurrentThread binds the current OS thread to cpuID.
func platformPinCurrentThread(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("concurrency: sched_setaffinity cpu %d: %w", cpuID, err)
	}
	return nil
}

// platformUnpinCurrentThread restores the process start-up mask.
func platformUnpinCurrentThread() error {
	if initialMaskErr != nil {
		return fmt.Errorf("concurrency: initial affinity unknown: %w", initialMaskErr)
	}
	mask := initialMask
	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		return fmt.Errorf("concurrency: sched_setaffinity restore: %w", err)
	}
	return nil
}

// AllowedCPUs returns the CPUs in the process start-up mask.
func AllowedCPUs() []int {
	if initialMaskErr != nil {
		return nil
	}
	var cpus []int
	for cpu := 0; cpu < maxCPUs && len(cpus) < initialMask.Count(); cpu++ {
		if initialMask.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus
}
