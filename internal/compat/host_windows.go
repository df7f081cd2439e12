//go:build windows

package compat

import (
	"os/exec"
	"regexp"
)

var verPattern = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// osVersion parses the Windows build version from "cmd /c ver", e.g.
// "Microsoft Windows [Version 10.0.22631.4169]" -> "10.0.22631".
func osVersion() string {
	out, err := exec.Command("cmd", "/c", "ver").Output()
	if err != nil {
		return ""
	}
	match := verPattern.FindString(string(out))
	return normalizeVersion(match)
}
