package version

import (
	"runtime/debug"
)

// version set at build-time with -ldflags "-X .../version.version=v0.1.0"
var version = ""

const shortHashLen = 7

// CommitInfo returns the short vcs revision and commit time stamped into
// the binary, or "unknown" for each when the build carries no vcs info.
func CommitInfo() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown", "unknown"
	}

	return commitInfo(info.Settings)
}

func commitInfo(settings []debug.BuildSetting) (string, string) {
	hash, timestamp := "unknown", "unknown"

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			hash = s.Value
			if len(hash) > shortHashLen {
				hash = hash[:shortHashLen]
			}
		case "vcs.time":
			timestamp = s.Value
		}
	}

	return hash, timestamp
}

// Version returns the ldflags version, falling back to the main module
// version recorded by `go install`.
func Version() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "main"
}
