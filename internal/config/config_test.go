package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/toolver/internal/gitinfo"
	"github.com/oshokin/toolver/internal/version"
)

// TestValidate checks backend, binary and log level validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Exec backend without a binary.
	cfg := &Config{Git: Git{Backend: gitinfo.BackendExec}}
	require.Error(t, Validate(cfg))

	// Unknown backend.
	cfg = &Config{Git: Git{Backend: "svn"}}
	require.ErrorIs(t, Validate(cfg), gitinfo.ErrUnknownBackend)

	// Unknown log level.
	cfg = &Config{Git: Git{Backend: gitinfo.BackendGoGit}, LogLevel: "loud"}
	require.Error(t, Validate(cfg))

	// Defaults are filled in.
	cfg = &Config{Git: Git{Binary: "git"}}
	require.NoError(t, Validate(cfg))
	require.Equal(t, gitinfo.BackendExec, cfg.Git.Backend)
	require.Equal(t, ".", cfg.Git.Dir)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "toolver.yaml")

	cfg := Default()
	cfg.Releases.Nightly = version.New(1, 23, 0)
	cfg.Git.Backend = gitinfo.BackendGoGit
	cfg.LogLevel = "debug"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "nightly: 1.23.0")
}

// TestLoad_PartialFile verifies unspecified fields keep their defaults.
func TestLoad_PartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "toolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("releases:\n  beta: 2.0.1\n"), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, version.New(2, 0, 1), cfg.Releases.Beta)
	require.Equal(t, version.CurrentStable, cfg.Releases.Stable)
	require.Equal(t, gitinfo.DefaultBinary, cfg.Git.Binary)
}

// TestLoad_Errors covers missing explicit files and malformed versions.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("releases:\n  stable: 1.20\n"), DefaultFilePermissions))

	_, err = Load(path)
	require.ErrorIs(t, err, version.ErrInvalidVersion)
}

// TestLoad_DefaultPathMissing falls back to defaults when no settings file exists.
func TestLoad_DefaultPathMissing(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSave_NilConfig rejects a nil configuration.
func TestSave_NilConfig(t *testing.T) {
	t.Parallel()

	require.Error(t, Save(filepath.Join(t.TempDir(), "toolver.yaml"), nil))
}
