//go:build darwin

package compat

import "os/exec"

// osVersion reports the Darwin kernel release via uname, matching the
// version floor keyed by "darwin" in the policy table.
func osVersion() string {
	out, err := exec.Command("uname", "-r").Output()
	if err != nil {
		return ""
	}
	return normalizeVersion(string(out))
}
