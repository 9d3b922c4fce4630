// Package sysmon samples host-wide CPU and memory load, reported alongside
// run details and exported as metrics.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of host resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
	TotalMemory uint64  // bytes
}

// Sample collects a host CPU and memory snapshot. CPU uses interval 0, the
// busy share since the previous call. Fields stay zero when the platform
// does not report them.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.TotalMemory = vmem.Total
	}
	return s
}
