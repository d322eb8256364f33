package version

import "runtime"

// Set with -ldflags "-X github.com/Zachkp/techfolio/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)
