//go:build !linux && !darwin && !windows

package compat

// osVersion has no probe on this platform; the OS allow-list rejects the
// host before the version check runs.
func osVersion() string {
	return ""
}
