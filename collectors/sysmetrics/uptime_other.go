//go:build !linux

package sysmetrics

import (
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// readUptime returns the host uptime on non-Linux platforms.
func readUptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}
