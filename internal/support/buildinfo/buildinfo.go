// Package buildinfo exposes the version string stamped at link time.
package buildinfo

// Version is overridden via -ldflags at release builds.
var Version = "dev"
