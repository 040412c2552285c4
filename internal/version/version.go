// Package version carries build metadata stamped by the linker.
package version

// Populated via -ldflags at release build time; defaults identify a
// from-source build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
