// Package version reports build information for the nextpost binary.
//
// Version and commit can be stamped at link time:
//
//	go build -ldflags "-X github.com/DavidRaab/website-sub000/version.Version=1.2.0" ./cmd/nextpost
//
// Anything not stamped falls back to the VCS settings recorded by the Go
// toolchain in the binary.
package version
