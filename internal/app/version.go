package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/curator-backend/internal/app.Version=1.0.0" ./cmd/server
//
// Commit and BuildTime fall back to the VCS stamp of the binary.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns a formatted version string for startup logs.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		c, b := vcsStamp()
		if commit == "" {
			commit = c
		}
		if built == "" {
			built = b
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func vcsStamp() (revision, built string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			built = s.Value
		}
	}
	return revision, built
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
