package hostinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// unknownModel marks a CPU whose identity could not be probed.
const unknownModel = "unknown"

// bytesPerGiB converts raw byte counts for display.
const bytesPerGiB = 1 << 30

// Info holds the host parameters captured for one benchmark run.
type Info struct {
	// CPUModel is the CPU's self-reported model name, or "unknown".
	CPUModel string

	// LogicalCores is the number of logical CPUs, 0 when unprobed.
	LogicalCores int

	// MHz is the CPU's reported base frequency, 0 when unprobed.
	MHz float64

	// TotalRAM and AvailableRAM are byte counts, 0 when unprobed.
	TotalRAM     uint64
	AvailableRAM uint64

	// MaxProcs is runtime.GOMAXPROCS at collection time.
	MaxProcs int
}

// Collect probes the host and returns its parameters. Failed probes
// leave their fields at the zero/unknown markers rather than failing
// the collection.
func Collect() *Info {
	info := &Info{
		CPUModel: unknownModel,
		MaxProcs: runtime.GOMAXPROCS(0),
	}

	if raw, err := cpu.Info(); err == nil && len(raw) > 0 {
		info.CPUModel = raw[0].ModelName
		info.LogicalCores = len(raw)
		info.MHz = raw[0].Mhz
	}

	if vms, err := mem.VirtualMemory(); err == nil {
		info.TotalRAM = vms.Total
		info.AvailableRAM = vms.Available
	}

	return info
}

// String renders the parameters as one log-friendly line.
func (i *Info) String() string {
	return fmt.Sprintf("cpu=%q cores=%d mhz=%.0f ram=%s avail=%s gomaxprocs=%d",
		i.CPUModel, i.LogicalCores, i.MHz,
		formatBytes(i.TotalRAM), formatBytes(i.AvailableRAM), i.MaxProcs)
}

// formatBytes renders a byte count in GiB with two decimals.
func formatBytes(b uint64) string {
	return fmt.Sprintf("%.2fGiB", float64(b)/bytesPerGiB)
}
