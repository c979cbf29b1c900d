// Package version holds build metadata injected with
// -ldflags "-X github.com/jmylchreest/triad/internal/version.<Name>=<value>".
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func String() string {
	info := GetInfo()
	if info.Commit == "unknown" || info.Date == "unknown" {
		return fmt.Sprintf("triad version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("triad version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// JSON returns the version information as indented JSON.
func JSON() ([]byte, error) {
	return json.MarshalIndent(GetInfo(), "", "  ")
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
