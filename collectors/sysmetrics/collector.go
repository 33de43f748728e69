// Package sysmetrics collects local system metrics: CPU, RAM, swap, disk I/O
// and network I/O rates. Everything comes from gopsutil except uptime, which
// is read from the kernel directly on Linux.
package sysmetrics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"gitlab.com/tinyland/lab/sysdeck/collectors"
)

const (
	// collectorName is the unique identifier for this collector.
	collectorName = "sysmetrics"

	// collectorDescription describes what this collector gathers.
	collectorDescription = "Local system metrics (CPU, RAM, Swap, Disk I/O, Net I/O)"

	// defaultInterval matches the display refresh rate.
	defaultInterval = 1 * time.Second
)

// Collector implements collectors.Collector for local system metrics.
// Disk and network rates are computed from counter deltas between successive
// Collect calls, so the first call reports zero rates.
type Collector struct {
	logger *slog.Logger

	prevTime time.Time
	prevDisk map[string]disk.IOCountersStat
	prevNet  []net.IOCountersStat

	// Overridable probes for testing.
	cpuPercent  func(interval time.Duration, percpu bool) ([]float64, error)
	cpuInfo     func() ([]cpu.InfoStat, error)
	virtualMem  func() (*mem.VirtualMemoryStat, error)
	swapMem     func() (*mem.SwapMemoryStat, error)
	diskIO      func() (map[string]disk.IOCountersStat, error)
	netIO       func(pernic bool) ([]net.IOCountersStat, error)
	uptimeProbe func() (time.Duration, error)
}

// NewCollector creates a sysmetrics Collector. If logger is nil, a no-op
// logger is used.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Collector{
		logger:      logger,
		prevDisk:    make(map[string]disk.IOCountersStat),
		cpuPercent:  cpu.Percent,
		cpuInfo:     cpu.Info,
		virtualMem:  mem.VirtualMemory,
		swapMem:     mem.SwapMemory,
		diskIO: func() (map[string]disk.IOCountersStat, error) {
			return disk.IOCounters()
		},
		netIO:       net.IOCounters,
		uptimeProbe: readUptime,
	}
}

// Name returns the collector's unique identifier.
func (c *Collector) Name() string {
	return collectorName
}

// Description returns a human-readable description of what this collector gathers.
func (c *Collector) Description() string {
	return collectorDescription
}

// Interval returns the recommended polling interval for this collector.
func (c *Collector) Interval() time.Duration {
	return defaultInterval
}

// Collect gathers CPU, memory, swap, and I/O metrics. Each source failing is
// a warning, not an error, so one dead probe never blanks the whole tile set.
func (c *Collector) Collect(ctx context.Context) (*collectors.Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var warnings []string
	now := time.Now()
	data := &collectors.SystemStats{}

	// Non-blocking CPU sample: gopsutil compares against the previous call's
	// counters when the interval is zero.
	if pct, err := c.cpuPercent(0, false); err != nil {
		warnings = append(warnings, fmt.Sprintf("sysmetrics: cpu percent: %v", err))
	} else if len(pct) > 0 {
		data.CPUPercent = clampPercent(pct[0])
	}

	if info, err := c.cpuInfo(); err == nil && len(info) > 0 {
		data.CPUFreqMHz = info[0].Mhz
	}

	if vm, err := c.virtualMem(); err != nil {
		warnings = append(warnings, fmt.Sprintf("sysmetrics: virtual memory: %v", err))
	} else {
		data.RAMPercent = clampPercent(vm.UsedPercent)
		data.RAMUsed = vm.Used
		data.RAMTotal = vm.Total
	}

	if sw, err := c.swapMem(); err != nil {
		warnings = append(warnings, fmt.Sprintf("sysmetrics: swap memory: %v", err))
	} else {
		data.SwapPercent = clampPercent(sw.UsedPercent)
		data.SwapUsed = sw.Used
		data.SwapTotal = sw.Total
	}

	elapsed := now.Sub(c.prevTime).Seconds()
	firstRun := c.prevTime.IsZero()

	if counters, err := c.diskIO(); err != nil {
		warnings = append(warnings, fmt.Sprintf("sysmetrics: disk counters: %v", err))
	} else {
		read, write := c.diskDeltas(counters)
		if !firstRun && elapsed > 0 {
			data.DiskReadBps = read / elapsed
			data.DiskWriteBps = write / elapsed
		}
	}

	if counters, err := c.netIO(false); err != nil {
		warnings = append(warnings, fmt.Sprintf("sysmetrics: net counters: %v", err))
	} else {
		recv, sent := c.netDeltas(counters)
		if !firstRun && elapsed > 0 {
			data.NetRecvBps = recv / elapsed
			data.NetSentBps = sent / elapsed
		}
	}

	c.prevTime = now

	if up, err := c.uptimeProbe(); err != nil {
		warnings = append(warnings, fmt.Sprintf("sysmetrics: uptime: %v", err))
	} else {
		data.Uptime = up
	}

	c.logger.Debug("sysmetrics collected",
		"cpu", fmt.Sprintf("%.1f%%", data.CPUPercent),
		"ram", fmt.Sprintf("%.1f%%", data.RAMPercent),
		"swap", fmt.Sprintf("%.1f%%", data.SwapPercent),
		"warnings", len(warnings),
	)

	return &collectors.Result{
		Collector: collectorName,
		Timestamp: now,
		Data:      data,
		Warnings:  warnings,
	}, nil
}

// diskDeltas sums byte deltas across physical devices, skipping loop mounts.
// Counters that went backwards (device reset) are skipped for one cycle.
func (c *Collector) diskDeltas(counters map[string]disk.IOCountersStat) (read, write float64) {
	for name, st := range counters {
		if strings.HasPrefix(name, "loop") {
			continue
		}
		if prev, ok := c.prevDisk[name]; ok {
			if st.ReadBytes >= prev.ReadBytes {
				read += float64(st.ReadBytes - prev.ReadBytes)
			}
			if st.WriteBytes >= prev.WriteBytes {
				write += float64(st.WriteBytes - prev.WriteBytes)
			}
		}
		c.prevDisk[name] = st
	}
	return read, write
}

// netDeltas computes byte deltas on the aggregate interface counters.
func (c *Collector) netDeltas(counters []net.IOCountersStat) (recv, sent float64) {
	if len(counters) > 0 && len(c.prevNet) > 0 {
		cur, prev := counters[0], c.prevNet[0]
		if cur.BytesRecv >= prev.BytesRecv {
			recv = float64(cur.BytesRecv - prev.BytesRecv)
		}
		if cur.BytesSent >= prev.BytesSent {
			sent = float64(cur.BytesSent - prev.BytesSent)
		}
	}
	if len(counters) > 0 {
		c.prevNet = counters
	}
	return recv, sent
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Compile-time interface compliance check.
var _ collectors.Collector = (*Collector)(nil)
