// Package version provides build version and metadata information.
//
// Values injected with -ldflags win. Binaries built without them, such as
// those from "go install", fall back to the module version and VCS stamp
// recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unset = "unknown"

var (
	// Version is the semantic version of the application.
	// Set during build with -ldflags "-X github.com/d-kuro/readme-chapters/pkg/version.Version=v1.0.0"
	Version = "dev"

	// GitCommit is the git commit hash.
	GitCommit = unset

	// BuildDate is the build timestamp.
	BuildDate = unset
)

// Info contains version and build information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion returns the current version information.
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	return info
}

// fromBuildInfo fills the fields not set through ldflags.
func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == unset {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == unset {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}

// String returns a formatted version string.
func (i Info) String() string {
	return fmt.Sprintf("readme-chapters %s (%s, built %s) with %s on %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
