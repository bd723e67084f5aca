// Package version holds the CLI version, set at build time via ldflags.
package version

// Version is the current release of the GreenCure CLI
var Version = "0.1.0"
