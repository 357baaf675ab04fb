// Package version holds build version information.
package version

// Version is the current release version, overridable at build time with
// -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "v0.3.0"
