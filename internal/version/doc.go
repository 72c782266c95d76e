// Package version describes toolchain releases as major.minor.patch values.
//
// A Version renders in three forms: the canonical "1.2.3", the unstable tool
// string "0.12.3" and the stable tool string "12.3.0". Parse is best effort
// and only reports whether a value was found.
//
// Build metadata (CFG_VERSION, CFG_RELEASE_CHANNEL, commit and build time) is
// injected via Go ldflags, for example:
//
//	go build -ldflags "-X github.com/oshokin/toolver/internal/version.cfgVersion=1.21.0 \
//	                   -X github.com/oshokin/toolver/internal/version.cfgReleaseChannel=beta"
package version
