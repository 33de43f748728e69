package collectors

import (
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/sysdeck/internal/format"
)

// Tile names shared between collectors, config, and the display layer.
const (
	TileCPU  = "cpu"
	TileRAM  = "ram"
	TileSwap = "swap"
	TileGPU  = "gpu"
	TileVRAM = "vram"
	TileTemp = "temp"
	TileDisk = "disk"
	TileNet  = "net"
)

// SystemStats is the data payload produced by the sysmetrics collector.
type SystemStats struct {
	CPUPercent float64
	CPUFreqMHz float64

	RAMPercent float64
	RAMUsed    uint64
	RAMTotal   uint64

	SwapPercent float64
	SwapUsed    uint64
	SwapTotal   uint64

	// Byte-per-second rates derived from counter deltas. Zero on the first
	// sample, before a delta exists.
	DiskReadBps  float64
	DiskWriteBps float64
	NetRecvBps   float64
	NetSentBps   float64

	Uptime time.Duration
}

// GPUStats is the data payload produced by the gpu collector.
type GPUStats struct {
	// Present is false when no GPU was found (missing nvidia-smi, no
	// device). The remaining fields are zero in that case.
	Present bool

	Name        string
	UtilPercent float64
	MemUsedMB   float64
	MemTotalMB  float64
	TempC       float64
}

// VRAMPercent returns used VRAM as a percentage of total, or 0 when the
// total is unknown.
func (g GPUStats) VRAMPercent() float64 {
	if g.MemTotalMB <= 0 {
		return 0
	}
	return g.MemUsedMB / g.MemTotalMB * 100
}

// Metric is a single percentage observation ready for rendering.
type Metric struct {
	// Percent is the tile's health percentage, clamped by the display layer.
	Percent float64
	// Detail is a short secondary line, e.g. "3.2/16G" or a GPU name.
	Detail string
	// OK is false when the source was unavailable and the value is a
	// placeholder.
	OK bool
}

// IORate is a read/write (or recv/send) byte-rate pair for an I/O tile.
type IORate struct {
	ReadBps  float64
	WriteBps float64
	OK       bool
}

// Snapshot is the merged view of all collector results for one tick.
type Snapshot struct {
	Taken    time.Time
	Uptime   time.Duration
	Metrics  map[string]Metric
	IO       map[string]IORate
	Warnings []string
}

// Metric returns the metric for a tile name, with a zero placeholder for
// tiles that have no data yet.
func (s Snapshot) Metric(tile string) Metric {
	if m, ok := s.Metrics[tile]; ok {
		return m
	}
	return Metric{Detail: "N/A"}
}

// Rate returns the I/O rates for a tile name.
func (s Snapshot) Rate(tile string) IORate {
	if r, ok := s.IO[tile]; ok {
		return r
	}
	return IORate{}
}

// BuildSnapshot merges collector results into a Snapshot. Unknown payload
// types are skipped; the snapshot always carries an entry for every tile so
// the display layer never needs nil checks.
func BuildSnapshot(now time.Time, results []*Result) Snapshot {
	snap := Snapshot{
		Taken:   now,
		Metrics: make(map[string]Metric),
		IO:      make(map[string]IORate),
	}

	// Placeholders first so missing collectors still render as "N/A".
	for _, tile := range []string{TileCPU, TileRAM, TileSwap, TileGPU, TileVRAM, TileTemp} {
		snap.Metrics[tile] = Metric{Detail: "N/A"}
	}
	snap.IO[TileDisk] = IORate{}
	snap.IO[TileNet] = IORate{}

	for _, res := range results {
		if res == nil {
			continue
		}
		snap.Warnings = append(snap.Warnings, res.Warnings...)

		switch data := res.Data.(type) {
		case *SystemStats:
			snap.Uptime = data.Uptime
			snap.Metrics[TileCPU] = Metric{
				Percent: data.CPUPercent,
				Detail:  freqDetail(data.CPUFreqMHz),
				OK:      true,
			}
			snap.Metrics[TileRAM] = Metric{
				Percent: data.RAMPercent,
				Detail:  format.GiBPair(data.RAMUsed, data.RAMTotal),
				OK:      true,
			}
			snap.Metrics[TileSwap] = Metric{
				Percent: data.SwapPercent,
				Detail:  format.GiBPair(data.SwapUsed, data.SwapTotal),
				OK:      true,
			}
			snap.IO[TileDisk] = IORate{ReadBps: data.DiskReadBps, WriteBps: data.DiskWriteBps, OK: true}
			snap.IO[TileNet] = IORate{ReadBps: data.NetRecvBps, WriteBps: data.NetSentBps, OK: true}

		case *GPUStats:
			if !data.Present {
				continue
			}
			snap.Metrics[TileGPU] = Metric{Percent: data.UtilPercent, Detail: data.Name, OK: true}
			snap.Metrics[TileVRAM] = Metric{
				Percent: data.VRAMPercent(),
				Detail:  fmt.Sprintf("%.0f/%.0fM", data.MemUsedMB, data.MemTotalMB),
				OK:      true,
			}
			snap.Metrics[TileTemp] = Metric{Percent: data.TempC, Detail: "GPU", OK: true}
		}
	}

	return snap
}

func freqDetail(mhz float64) string {
	if mhz <= 0 {
		return ""
	}
	return fmt.Sprintf("%.0fMHz", mhz)
}
