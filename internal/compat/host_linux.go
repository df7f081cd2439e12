//go:build linux

package compat

import "os"

// osVersion reads the kernel release, e.g. "6.8.0-45-generic" -> "6.8.0".
func osVersion() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return normalizeVersion(string(data))
}
