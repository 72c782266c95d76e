package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version is a toolchain release identified by three unsigned components.
type Version struct {
	// Major is the first release component.
	Major uint32
	// Minor is the second release component.
	Minor uint32
	// Patch is the third release component.
	Patch uint32
}

//nolint:gochecknoglobals // Release lines known at the time of writing, never mutated.
var (
	// CurrentStable is the current stable release line.
	CurrentStable = New(1, 20, 0)
	// CurrentBeta is the current beta release line.
	CurrentBeta = New(1, 21, 0)
	// CurrentNightly is the current nightly release line.
	CurrentNightly = New(1, 22, 0)
)

// ErrInvalidVersion is returned by UnmarshalText when the text is not a version.
var ErrInvalidVersion = errors.New("invalid version")

// versionComponents is the number of dot-separated tokens Parse consumes.
const versionComponents = 3

// New returns a Version with the given components.
func New(major, minor, patch uint32) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// Parse reads a version from dot-separated text.
// Only the first three tokens are consumed, so "1.2.3.4" yields 1.2.3.
// It reports false when fewer than three tokens are present
// or any of them is not a base-10 uint32 with an optional leading "+".
func Parse(s string) (Version, bool) {
	tokens := strings.Split(s, ".")
	if len(tokens) < versionComponents {
		return Version{}, false
	}

	var components [versionComponents]uint32

	for i := range components {
		// A single leading plus is accepted, minus signs and spaces are not.
		token, _ := strings.CutPrefix(tokens[i], "+")

		n, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return Version{}, false
		}

		components[i] = uint32(n)
	}

	return New(components[0], components[1], components[2]), true
}

// FromEnvVar parses the version injected at build time as CFG_VERSION.
// It reports false when nothing was injected or the value is not a version.
func FromEnvVar() (Version, bool) {
	if cfgVersion == "" {
		return Version{}, false
	}

	return Parse(cfgVersion)
}

// String returns the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// UnstableToolString returns "0.{major}{minor}.{patch}".
// Major and minor are joined as text, so 12.3.4 becomes "0.123.4".
func (v Version) UnstableToolString() string {
	return fmt.Sprintf("0.%d%d.%d", v.Major, v.Minor, v.Patch)
}

// StableToolString returns "{major}{minor}.{patch}.0".
func (v Version) StableToolString() string {
	return fmt.Sprintf("%d%d.%d.0", v.Major, v.Minor, v.Patch)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}

	*v = parsed

	return nil
}
