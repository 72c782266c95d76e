package version

import "fmt"

//nolint:gochecknoglobals // Build metadata is injected via ldflags.
var (
	// cfgVersion is the CFG_VERSION value. It can be set via ldflags.
	cfgVersion string
	// cfgReleaseChannel is the CFG_RELEASE_CHANNEL value. It can be set via ldflags.
	cfgReleaseChannel string

	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// devVersion is reported by Short when no version was injected.
const devVersion = "dev"

// Channel returns the release channel injected at build time as CFG_RELEASE_CHANNEL.
func Channel() (string, bool) {
	if cfgReleaseChannel == "" {
		return "", false
	}

	return cfgReleaseChannel, true
}

// Short returns the build version in canonical form,
// or "dev" when CFG_VERSION is absent or not a version.
func Short() string {
	v, ok := FromEnvVar()
	if !ok {
		return devVersion
	}

	return v.String()
}

// Full returns a human-readable version string with channel, commit and build time.
func Full() string {
	channel, ok := Channel()
	if !ok {
		channel = "unknown"
	}

	return fmt.Sprintf("version: %s, channel: %s, commit: %s, built at: %s", Short(), channel, Commit, BuildTime)
}
