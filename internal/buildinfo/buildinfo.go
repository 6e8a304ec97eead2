// Package buildinfo carries the release stamp of the firmware image.
package buildinfo

// Name is the product name shown in banners.
const Name = "lockbox"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for logs and the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long returns the full stamp, e.g. "lockbox v1.2.0 (abc1234, 2025-01-01)".
func Long() string {
	return Name + " " + Version + " (" + Commit + ", " + Date + ")"
}
