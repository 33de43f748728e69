//go:build linux

package sysmetrics

import (
	"time"

	"golang.org/x/sys/unix"
)

// readUptime returns the kernel uptime via sysinfo(2).
func readUptime() (time.Duration, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	return time.Duration(info.Uptime) * time.Second, nil
}
