// Package version reports the dirbench build version.
//
// Version, Commit and Date are set at link time:
//
//	go build -ldflags "-X github.com/dendrascience/dirbench/version.Version=v0.3.0 \
//	  -X github.com/dendrascience/dirbench/version.Commit=$(git rev-parse HEAD)"
//
// Unset values fall back to the module's build info, so `go install` builds
// still report a real version and VCS revision.
package version
