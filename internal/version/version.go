// Package version exposes build metadata injected through ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags "-X github.com/plannerx/plx/internal/version.Version=..."
// and friends at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info bundles the build metadata for display and JSON output.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build metadata of the running binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders a single human-readable version line.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("plx %s (%s) built %s with %s for %s",
		i.Version, commit, i.Date, i.GoVersion, i.Platform)
}
