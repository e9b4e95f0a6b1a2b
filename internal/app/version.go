package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/studydocs-backend/internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for startup logs, /health and
// `studyctl version`. Commit and build time fall back to the VCS stamp the
// go tool embeds when ldflags are not set.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			c, b := vcsStamp(info.Settings)
			commit = firstNonEmpty(commit, c)
			built = firstNonEmpty(built, b)
		}
	}
	return formatVersion(Version, commit, built)
}

func vcsStamp(settings []debug.BuildSetting) (revision, at string) {
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty && revision != "" {
		revision += "-dirty"
	}
	return revision, at
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version,
		firstNonEmpty(commit, "unknown"), firstNonEmpty(built, "unknown"))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
