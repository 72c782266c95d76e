package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/toolver/internal/gitinfo"
	"github.com/oshokin/toolver/internal/logger"
	"github.com/oshokin/toolver/internal/version"
)

// Config holds the settings shared by toolver commands.
type Config struct {
	// Releases lists the release lines reported by the CLI.
	Releases Releases `yaml:"releases"`
	// Git selects how commit information is looked up.
	Git Git `yaml:"git"`
	// LogLevel is the minimum level of log entries written to stderr.
	LogLevel string `yaml:"log_level"`
}

// Releases holds one version per release channel.
type Releases struct {
	// Stable is the current stable release line.
	Stable version.Version `yaml:"stable"`
	// Beta is the current beta release line.
	Beta version.Version `yaml:"beta"`
	// Nightly is the current nightly release line.
	Nightly version.Version `yaml:"nightly"`
}

// Git configures commit hash and date lookups.
type Git struct {
	// Backend is either "exec" (run the git binary) or "go-git" (read in-process).
	Backend string `yaml:"backend"`
	// Binary is the git executable used by the exec backend.
	Binary string `yaml:"binary"`
	// Dir is the directory whose repository is inspected.
	Dir string `yaml:"dir"`
}

const (
	// DefaultConfigFilename is the default filename for toolver settings.
	DefaultConfigFilename = "toolver.yaml"

	// DefaultLogLevel is used when the settings do not name one.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errGitBinaryRequired is returned when the exec backend has no binary.
	errGitBinaryRequired = errors.New("git binary must be provided for the exec backend")
	// errInvalidLogLevel is returned for an unknown log level name.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns settings describing the built-in release lines and the exec backend.
func Default() *Config {
	return &Config{
		Releases: Releases{
			Stable:  version.CurrentStable,
			Beta:    version.CurrentBeta,
			Nightly: version.CurrentNightly,
		},
		Git: Git{
			Backend: gitinfo.BackendExec,
			Binary:  gitinfo.DefaultBinary,
			Dir:     ".",
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from the provided path over the defaults and validates it.
// A missing file at the default path is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills optional fields with defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Git.Backend == "" {
		cfg.Git.Backend = gitinfo.BackendExec
	}

	switch cfg.Git.Backend {
	case gitinfo.BackendExec:
		if cfg.Git.Binary == "" {
			return errGitBinaryRequired
		}
	case gitinfo.BackendGoGit:
	default:
		return fmt.Errorf("%w: %q", gitinfo.ErrUnknownBackend, cfg.Git.Backend)
	}

	if cfg.Git.Dir == "" {
		cfg.Git.Dir = "."
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
