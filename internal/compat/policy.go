// Package compat decides whether the host machine can run the application.
// The rules live in a single declarative policy table evaluated once at
// startup, before any UI exists.
package compat

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicyYAML []byte

// Status classifies the outcome of a policy evaluation.
type Status int

const (
	StatusSupported Status = iota
	StatusUnsupportedArch
	StatusUnsupportedOS
	StatusUnsupportedVersion
)

func (s Status) String() string {
	switch s {
	case StatusSupported:
		return "supported"
	case StatusUnsupportedArch:
		return "unsupported-arch"
	case StatusUnsupportedOS:
		return "unsupported-os"
	case StatusUnsupportedVersion:
		return "unsupported-version"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Policy is the compatibility table: architecture and OS allow-lists plus a
// minimum OS version per operating system.
type Policy struct {
	Architectures     []string          `yaml:"architectures"`
	Platforms         []string          `yaml:"platforms"`
	MinimumOSVersions map[string]string `yaml:"minimum_os_versions"`
}

// Result is the structured verdict for one host.
type Result struct {
	Status         Status
	Host           Host
	MinimumVersion string
}

// Supported reports whether the host passed every check.
func (r Result) Supported() bool {
	return r.Status == StatusSupported
}

// Reason describes an unsupported verdict for logs and dialogs.
func (r Result) Reason() string {
	switch r.Status {
	case StatusUnsupportedArch:
		return fmt.Sprintf("unsupported processor architecture %q", r.Host.Arch)
	case StatusUnsupportedOS:
		return fmt.Sprintf("unsupported operating system %q", r.Host.OS)
	case StatusUnsupportedVersion:
		return fmt.Sprintf("%s version %s is below the required minimum %s",
			r.Host.OS, r.Host.Version, r.MinimumVersion)
	default:
		return ""
	}
}

// DefaultPolicy returns the policy embedded in the binary.
func DefaultPolicy() Policy {
	policy, err := ParsePolicy(defaultPolicyYAML)
	if err != nil {
		// The embedded table is validated by tests; a parse failure here
		// means a broken build.
		panic(fmt.Sprintf("compat: embedded policy invalid: %v", err))
	}
	return policy
}

// ParsePolicy decodes a policy document, rejecting unknown fields.
func ParsePolicy(data []byte) (Policy, error) {
	var policy Policy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&policy); err != nil && err != io.EOF {
		return Policy{}, fmt.Errorf("decode compatibility policy: %w", err)
	}
	if len(policy.Architectures) == 0 {
		return Policy{}, fmt.Errorf("compatibility policy lists no architectures")
	}
	if len(policy.Platforms) == 0 {
		return Policy{}, fmt.Errorf("compatibility policy lists no platforms")
	}
	for os, floor := range policy.MinimumOSVersions {
		if _, err := semver.NewVersion(floor); err != nil {
			return Policy{}, fmt.Errorf("minimum version for %s: %w", os, err)
		}
	}
	return policy, nil
}

// Evaluate checks host facts against the policy. Checks run in severity
// order: architecture, then OS, then OS version.
func (p Policy) Evaluate(host Host) Result {
	result := Result{Status: StatusSupported, Host: host}

	if !contains(p.Architectures, host.Arch) {
		result.Status = StatusUnsupportedArch
		return result
	}
	if !contains(p.Platforms, host.OS) {
		result.Status = StatusUnsupportedOS
		return result
	}

	floor, ok := p.MinimumOSVersions[host.OS]
	if !ok {
		// OS is allow-listed but carries no version floor.
		return result
	}
	result.MinimumVersion = floor

	minimum, err := semver.NewVersion(floor)
	if err != nil {
		// Guarded by ParsePolicy; treat as no floor.
		return result
	}
	current, err := semver.NewVersion(host.Version)
	if err != nil {
		result.Status = StatusUnsupportedVersion
		return result
	}
	if current.LessThan(minimum) {
		result.Status = StatusUnsupportedVersion
	}
	return result
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
