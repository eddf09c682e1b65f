//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package affinity

import (
	"fmt"
	"runtime"
	"syscall"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

func setThreadMask(mask uintptr) error {
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		return err
	}
	return nil
}

// setAffinityPlatform sets thread affinity to a given CPU for Windows.
func setAffinityPlatform(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() || cpuID >= 64 {
		return fmt.Errorf("affinity: cpu %d out of range", cpuID)
	}
	return setThreadMask(uintptr(1) << cpuID)
}

// clearAffinityPlatform restores the full process mask for the calling thread.
func clearAffinityPlatform() error {
	cpus := runtime.NumCPU()
	if cpus > 64 {
		cpus = 64
	}
	mask := uintptr(1)<<cpus - 1
	return setThreadMask(mask)
}
