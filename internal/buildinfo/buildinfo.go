// Package buildinfo reports the version stamped in by the linker, falling
// back to the VCS data the Go toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X tftgauge/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "unknown" && len(s.Value) >= 7 {
				Commit = s.Value[:7]
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}
}

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full version line printed by --version.
func String() string {
	return fmt.Sprintf("tftgauge %s (commit %s, built %s)", Version, Commit, Date)
}
