// Package build holds metadata stamped into the binary at link time, e.g.
//
//	go build -ldflags "-X github.com/stackbook/naivelist/internal/build.Version=v0.1.0"
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
