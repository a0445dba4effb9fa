// Package version exposes build metadata stamped at link time
package version

// Stamped via -ldflags, e.g.
// -X 'spamwatch/internal/core/version.version=v0.1.0'
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the wire shape of /meta/version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info reports the current build
func Info() BuildInfo {
	return BuildInfo{
		Service: "spamwatch-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
