// Package version carries the build version stamped in at link time.
package version

// BuildVersion is overridden via -ldflags "-X flashdesk/internal/version.BuildVersion=x.y.z".
var BuildVersion = "dev"

// IsDevelopment reports whether this binary is an unstamped development build.
func IsDevelopment() bool {
	return BuildVersion == "" || BuildVersion == "dev"
}
