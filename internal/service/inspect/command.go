package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/toolver/internal/config"
	"github.com/oshokin/toolver/internal/gitinfo"
	"github.com/oshokin/toolver/internal/logger"
	"github.com/oshokin/toolver/internal/report"
	"github.com/oshokin/toolver/internal/version"
)

// Options controls how the commands load settings and where they write.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// LogLevel overrides the log level from the settings when not empty.
	LogLevel string
	// Output is the output format of the info command.
	Output string
	// Out receives command results.
	Out io.Writer
}

// Renderings accepted by Parse.
const (
	AsAll      = "all"
	AsDisplay  = "display"
	AsUnstable = "unstable"
	AsStable   = "stable"
)

var (
	// ErrNotAVersion is returned by Parse for text that is not a version.
	ErrNotAVersion = errors.New("not a version")
	// errUnknownRendering is returned by Parse for an unsupported rendering name.
	errUnknownRendering = errors.New("unknown rendering")
	// errInvalidLogLevel is returned for an unknown log level override.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Info collects build, commit and release information and renders it.
func Info(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "info")

	cfg, err := setup(opts)
	if err != nil {
		return err
	}

	src, err := gitinfo.NewSource(cfg.Git.Backend, cfg.Git.Dir, cfg.Git.Binary)
	if err != nil {
		return fmt.Errorf("create git source: %w", err)
	}

	ctx = logger.WithKV(ctx, "backend", cfg.Git.Backend)
	logger.DebugKV(ctx, "Collecting report", "dir", cfg.Git.Dir)

	r := report.Collect(ctx, src, report.ReleasesFrom(cfg.Releases))

	return report.Render(opts.Out, r, opts.Output)
}

// Releases prints the configured release lines with their tool strings.
func Releases(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "releases")

	cfg, err := setup(opts)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Listing release lines", "stable", cfg.Releases.Stable, "beta", cfg.Releases.Beta, "nightly", cfg.Releases.Nightly)

	report.RenderReleases(opts.Out, report.ReleasesFrom(cfg.Releases))

	return nil
}

// Parse parses text as a version and prints the requested rendering.
// AsAll prints one "name: value" line per rendering.
func Parse(ctx context.Context, opts *Options, text, as string) error {
	ctx = logger.WithName(ctx, "parse")

	// Parsing never reads the settings file, only the flag override applies.
	if opts.LogLevel != "" {
		if err := applyLogLevel(opts.LogLevel); err != nil {
			return err
		}
	}

	v, ok := version.Parse(text)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAVersion, text)
	}

	logger.DebugKV(ctx, "Parsed version", "input", text, "version", v)

	var err error

	switch as {
	case "", AsAll:
		_, err = fmt.Fprintf(opts.Out, "display: %s\nunstable: %s\nstable: %s\n",
			v, v.UnstableToolString(), v.StableToolString())
	case AsDisplay:
		_, err = fmt.Fprintln(opts.Out, v)
	case AsUnstable:
		_, err = fmt.Fprintln(opts.Out, v.UnstableToolString())
	case AsStable:
		_, err = fmt.Fprintln(opts.Out, v.StableToolString())
	default:
		return fmt.Errorf("%w: %q", errUnknownRendering, as)
	}

	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

// setup loads settings and applies the log level.
func setup(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	if err = applyLogLevel(levelName); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyLogLevel sets the global log level by name.
func applyLogLevel(name string) error {
	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, name)
	}

	logger.SetLevel(level)

	return nil
}
