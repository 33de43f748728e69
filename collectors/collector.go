// Package collectors provides the data collection interface and registry for
// sysdeck metrics gathering. Each collector gathers counters from a single
// source (local kernel counters, nvidia-smi) and returns structured results
// that are merged into one Snapshot per rendering tick.
package collectors

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Collector is the interface that all data collectors must implement.
type Collector interface {
	// Name returns the collector's unique identifier (e.g. "sysmetrics").
	// Names must be unique within a Registry.
	Name() string

	// Description returns a human-readable description of what this
	// collector gathers.
	Description() string

	// Interval returns the recommended polling interval for this collector.
	Interval() time.Duration

	// Collect gathers metrics and returns structured data. Non-fatal issues
	// should be reported as Warnings rather than errors. The context should
	// be respected for cancellation.
	Collect(ctx context.Context) (*Result, error)
}

// Result holds the output of a collection run.
type Result struct {
	// Collector is the name of the collector that produced this result.
	Collector string

	// Timestamp records when the collection completed.
	Timestamp time.Time

	// Data is the collector-specific structured data, one of the types in
	// models.go.
	Data any

	// Warnings contains non-fatal issues encountered during collection.
	Warnings []string
}

// Registry holds registered collectors and provides lookup by name.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a new empty collector registry.
func NewRegistry() *Registry {
	return &Registry{collectors: make([]Collector, 0)}
}

// Register adds a collector to the registry. A collector with an existing
// name replaces the previous one.
func (r *Registry) Register(c Collector) {
	for i, existing := range r.collectors {
		if existing.Name() == c.Name() {
			r.collectors[i] = c
			return
		}
	}
	r.collectors = append(r.collectors, c)
}

// Get returns a collector by name. The second return value indicates whether
// the collector was found.
func (r *Registry) Get(name string) (Collector, bool) {
	for _, c := range r.collectors {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// All returns all registered collectors.
func (r *Registry) All() []Collector {
	result := make([]Collector, len(r.collectors))
	copy(result, r.collectors)
	return result
}

// Poller runs every registered collector and merges the results into a
// Snapshot. Collector errors are logged and surfaced as snapshot warnings;
// one failing source never hides the others.
type Poller struct {
	reg    *Registry
	logger *slog.Logger
}

// NewPoller creates a Poller. If logger is nil, a no-op logger is used.
func NewPoller(reg *Registry, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Poller{reg: reg, logger: logger}
}

// Poll collects from all registered collectors and merges the results.
func (p *Poller) Poll(ctx context.Context) Snapshot {
	var results []*Result
	var warnings []string

	for _, c := range p.reg.All() {
		res, err := c.Collect(ctx)
		if err != nil {
			p.logger.Warn("collector failed", "collector", c.Name(), "error", err)
			warnings = append(warnings, c.Name()+": "+err.Error())
			continue
		}
		p.logger.Debug("collector finished", "collector", c.Name(), "warnings", len(res.Warnings))
		results = append(results, res)
	}

	snap := BuildSnapshot(time.Now(), results)
	snap.Warnings = append(snap.Warnings, warnings...)
	return snap
}
