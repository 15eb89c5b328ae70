package version

import "runtime/debug"

// Set with -ldflags "-X github.com/macropower/pathlex/internal/version.Version=...".
var (
	Version  = "0.0.0-dev"
	Revision = ""
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision, joined with "+".
func String() string {
	return Version + "+" + Revision
}
