// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/maxla/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/maxla/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/maxla/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Version is part of every result cache key, so a new release never reads
// results written by an older search.
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// CacheVersion is the version string folded into cache keys. Development
// builds include the commit so that local edits to the search do not reuse
// stale entries across commits.
func CacheVersion() string {
	if Version == "dev" {
		return Version + "+" + Commit
	}
	return Version
}
