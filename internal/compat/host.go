package compat

import (
	"runtime"
	"strings"
)

// Host captures the facts the policy is evaluated against.
type Host struct {
	OS      string
	Arch    string
	Version string
}

// DetectHost probes the running machine. The version probe is
// platform-specific; failures yield an empty version, which the policy
// treats as below any floor.
func DetectHost() Host {
	return Host{
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Version: osVersion(),
	}
}

// normalizeVersion trims distribution suffixes like "-arch1-1" or "+deb12"
// so the remainder parses as semver.
func normalizeVersion(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+_ "); i >= 0 {
		v = v[:i]
	}
	return v
}
