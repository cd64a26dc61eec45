package version

import (
	"runtime"
	"time"
)

// Overridden at build time with -ldflags "-X .../version.Version=v1.2.3".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = time.Now().Format(time.RFC3339)
	GoVersion = runtime.Version()
)

// String is the one-line build description printed by `insights version`.
func String() string {
	return "insights " + Version + " (commit=" + Commit + ", built=" + BuildDate + ", go=" + GoVersion + ")"
}
