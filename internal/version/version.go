// Package version provides version information for tabstrip.
package version

import "runtime/debug"

// Version is the release version. Overridden at build time through ldflags.
var Version = "development"

// Commit is the git commit hash. Overridden at build time through ldflags.
var Commit = "unknown"

// String returns the version plus the commit hash when one is known.
func String() string {
	return describe(Version, Commit)
}

// Detailed returns the version string, filling the commit from the VCS
// revision stamped into the build info when ldflags left it unset.
func Detailed() string {
	commit := Commit
	if commit == "unknown" {
		if rev := stampedRevision(); rev != "" {
			commit = rev
		}
	}
	return describe(Version, commit)
}

func describe(version, commit string) string {
	if commit != "unknown" && commit != "" {
		return version + "+" + commit
	}
	return version
}

// stampedRevision reads the short vcs.revision recorded by the Go
// toolchain. Empty when the binary carries no build info.
func stampedRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key != "vcs.revision" {
			continue
		}
		rev := setting.Value
		if len(rev) > 12 {
			rev = rev[:12]
		}
		return rev
	}
	return ""
}
