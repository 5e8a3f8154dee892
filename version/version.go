// Package version provides the textkit version.
package version

import "runtime/debug"

// version is set at build time with -ldflags "-X".
var version = ""

// String returns the version string.
func String() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "v0.0.0-dev"
}
