// Package sysinfo answers the two questions the cleaner core asks about
// its host: does the process hold elevated privileges, and how full is
// the machine right now.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Privileged reports whether the process runs with elevated privileges.
// Queried once per run start; never cached across runs.
func Privileged() bool {
	return os.Geteuid() == 0
}

// TryElevate validates cached sudo credentials without prompting. Returns
// an error when the process cannot obtain elevated rights this way; the
// caller then reports privileged items as permission failures.
func TryElevate(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "sudo", "-n", "-v")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("sudo validation: %w", err)
	}
	return nil
}

// Stats is a point-in-time snapshot for the performance panel.
type Stats struct {
	DiskTotal       uint64
	DiskFree        uint64
	DiskUsedPercent float64
	MemTotal        uint64
	MemUsed         uint64
	MemUsedPercent  float64
}

// Collect samples disk usage of the root filesystem and virtual memory.
func Collect() (Stats, error) {
	var s Stats

	du, err := disk.Usage("/")
	if err != nil {
		return s, fmt.Errorf("disk usage: %w", err)
	}
	s.DiskTotal = du.Total
	s.DiskFree = du.Free
	s.DiskUsedPercent = du.UsedPercent

	vm, err := mem.VirtualMemory()
	if err != nil {
		return s, fmt.Errorf("memory usage: %w", err)
	}
	s.MemTotal = vm.Total
	s.MemUsed = vm.Used
	s.MemUsedPercent = vm.UsedPercent

	return s, nil
}
