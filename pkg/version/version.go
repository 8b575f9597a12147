// Package version exposes the build version stamped at link time.
package version

import "github.com/Masterminds/semver/v3"

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/pcarver/galleria/pkg/version.Version=1.0.0"
var Version = "0.1.0-dev" //nolint:gochecknoglobals // Set via ldflags.

// GetVersion returns the build version string.
func GetVersion() string {
	return Version
}

// IsPrerelease reports whether the running build is a prerelease. An
// unparseable version is treated as a prerelease.
func IsPrerelease() bool {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}
