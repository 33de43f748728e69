// Package gpu collects NVIDIA GPU metrics by shelling out to nvidia-smi.
// Hosts without the tool simply report no GPU; that is a normal state, not
// an error.
package gpu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/sysdeck/collectors"
)

const (
	// collectorName is the unique identifier for this collector.
	collectorName = "gpu"

	// collectorDescription describes what this collector gathers.
	collectorDescription = "NVIDIA GPU utilization, VRAM, and temperature via nvidia-smi"

	// defaultInterval is slower than the display tick; GPU queries fork a
	// process and the numbers move slowly anyway.
	defaultInterval = 2 * time.Second

	// queryTimeout bounds a single nvidia-smi invocation.
	queryTimeout = 400 * time.Millisecond
)

// queryArgs is the nvidia-smi field list, parsed positionally below.
var queryArgs = []string{
	"--query-gpu=name,utilization.gpu,memory.used,memory.total,temperature.gpu",
	"--format=csv,noheader,nounits",
}

// Collector implements collectors.Collector for NVIDIA GPUs.
type Collector struct {
	logger *slog.Logger

	// missing latches once nvidia-smi is found absent so we stop forking a
	// doomed process every interval.
	missing bool

	// runQuery is overridable for testing. It returns nvidia-smi's stdout.
	runQuery func(ctx context.Context) (string, error)
}

// NewCollector creates a gpu Collector. If logger is nil, a no-op logger is
// used.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Collector{
		logger:   logger,
		runQuery: runNvidiaSMI,
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

// Collect queries nvidia-smi for the first GPU. A missing tool or empty
// output yields Present=false with no error.
func (c *Collector) Collect(ctx context.Context) (*collectors.Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data := &collectors.GPUStats{}
	result := &collectors.Result{
		Collector: collectorName,
		Timestamp: time.Now(),
		Data:      data,
	}

	if c.missing {
		return result, nil
	}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := c.runQuery(queryCtx)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			c.missing = true
			c.logger.Debug("nvidia-smi not found, gpu tiles disabled")
			return result, nil
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("gpu: nvidia-smi: %v", err))
		return result, nil
	}

	stats, ok := parseQueryOutput(out)
	if !ok {
		return result, nil
	}

	*data = stats
	c.logger.Debug("gpu collected",
		"name", data.Name,
		"util", fmt.Sprintf("%.0f%%", data.UtilPercent),
		"temp", fmt.Sprintf("%.0fC", data.TempC),
	)
	return result, nil
}

// parseQueryOutput parses the first CSV line of nvidia-smi output. Lines
// with fewer than five fields are skipped.
func parseQueryOutput(out string) (collectors.GPUStats, bool) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ",")
		if len(parts) < 5 {
			continue
		}
		return collectors.GPUStats{
			Present:     true,
			Name:        strings.TrimSpace(parts[0]),
			UtilPercent: parseFloat(parts[1]),
			MemUsedMB:   parseFloat(parts[2]),
			MemTotalMB:  parseFloat(parts[3]),
			TempC:       parseFloat(parts[4]),
		}, true
	}
	return collectors.GPUStats{}, false
}

func parseFloat(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func runNvidiaSMI(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "nvidia-smi", queryArgs...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compile-time interface compliance check.
var _ collectors.Collector = (*Collector)(nil)
