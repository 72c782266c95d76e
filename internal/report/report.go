package report

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/oshokin/toolver/internal/config"
	"github.com/oshokin/toolver/internal/gitinfo"
	"github.com/oshokin/toolver/internal/version"
)

// Unknown is shown for values that could not be determined.
const Unknown = "unknown"

// Release is a named release line.
type Release struct {
	// Name is the channel name, e.g. "stable".
	Name string
	// Version is the release line version.
	Version version.Version
}

// Report describes the running build and the release lines it knows about.
type Report struct {
	// Version is the build version injected as CFG_VERSION, as reported by version.Short.
	Version string
	// Channel is the release channel injected as CFG_RELEASE_CHANNEL.
	Channel string
	// CommitHash is the abbreviated HEAD commit of the inspected checkout.
	CommitHash string
	// CommitDate is the last commit date of the inspected checkout.
	CommitDate string
	// Releases lists the configured release lines.
	Releases []Release
}

// ReleasesFrom lists the configured release lines in stable, beta, nightly order.
func ReleasesFrom(r config.Releases) []Release {
	return []Release{
		{Name: "stable", Version: r.Stable},
		{Name: "beta", Version: r.Beta},
		{Name: "nightly", Version: r.Nightly},
	}
}

// Collect builds a Report, querying the commit hash and date concurrently.
// Missing channel and commit values are reported as Unknown; the build
// version uses the same presentation as the version command.
func Collect(ctx context.Context, src gitinfo.Source, releases []Release) *Report {
	r := &Report{
		Version:    version.Short(),
		Channel:    Unknown,
		CommitHash: Unknown,
		CommitDate: Unknown,
		Releases:   releases,
	}

	if channel, ok := version.Channel(); ok {
		r.Channel = channel
	}

	var g errgroup.Group

	g.Go(func() error {
		if hash, ok := src.CommitHash(ctx); ok {
			r.CommitHash = displayValue(hash)
		}

		return nil
	})

	g.Go(func() error {
		if date, ok := src.CommitDate(ctx); ok {
			r.CommitDate = displayValue(date)
		}

		return nil
	})

	// Lookups never fail, they only come back empty.
	_ = g.Wait()

	return r
}

// displayValue trims raw command output for display.
func displayValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unknown
	}

	return trimmed
}
