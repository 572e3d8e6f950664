// Package version reports build metadata for the api and the cli
package version

import "runtime/debug"

// BuildInfo holds version information about a build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Service names for the two binaries
const (
	ServiceAPI = "bizquery-api"
	ServiceCLI = "bizquery"
)

// Set via -ldflags "-X 'bizquery/internal/core/version.version=v1.0.0'
// -X 'bizquery/internal/core/version.commit=abcd' -X 'bizquery/internal/core/version.date=2025-09-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service. When the binary was not built with
// ldflags the vcs revision recorded by the go toolchain is used as the commit
func Info(service string) BuildInfo {
	bi := BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if bi.Commit == "none" {
		if rev, at, ok := vcs(); ok {
			bi.Commit = rev
			if bi.Date == "unknown" && at != "" {
				bi.Date = at
			}
		}
	}
	return bi
}

// String renders "service version (commit)"
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ")"
}

var readBuildInfo = debug.ReadBuildInfo

func vcs() (rev, at string, ok bool) {
	info, found := readBuildInfo()
	if !found || info == nil {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev, at, rev != ""
}
