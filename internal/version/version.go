// Package version records build metadata.
package version

// Populated at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
