package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/toolver/internal/config"
	"github.com/oshokin/toolver/internal/gitinfo"
	"github.com/oshokin/toolver/internal/version"
)

// writeConfig saves cfg to a temporary settings file and returns its path.
func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "toolver.yaml")
	require.NoError(t, config.Save(path, cfg))

	return path
}

// TestParse_Renderings checks every rendering of a parsed version.
func TestParse_Renderings(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		AsAll:      "display: 1.2.3\nunstable: 0.12.3\nstable: 12.3.0\n",
		AsDisplay:  "1.2.3\n",
		AsUnstable: "0.12.3\n",
		AsStable:   "12.3.0\n",
	}

	path := writeConfig(t, config.Default())

	for as, want := range cases {
		var out bytes.Buffer

		opts := &Options{ConfigPath: path, Out: &out}
		require.NoError(t, Parse(context.Background(), opts, "1.2.3", as))
		require.Equal(t, want, out.String(), "rendering %q", as)
	}
}

// TestParse_Rejects covers malformed versions and unknown renderings.
func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	opts := &Options{ConfigPath: writeConfig(t, config.Default()), Out: &out}

	require.ErrorIs(t, Parse(context.Background(), opts, "0.0", AsAll), ErrNotAVersion)
	require.ErrorIs(t, Parse(context.Background(), opts, "0..", AsAll), ErrNotAVersion)
	require.Error(t, Parse(context.Background(), opts, "1.2.3", "roman"))
	require.Empty(t, out.String())
}

// TestParse_IgnoresSettings ensures a broken settings file does not affect parsing.
func TestParse_IgnoresSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "toolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("releases:\n  stable: 1.20\ngit:\n  backend: svn\n"), config.DefaultFilePermissions))

	var out bytes.Buffer

	opts := &Options{ConfigPath: path, Out: &out}
	require.NoError(t, Parse(context.Background(), opts, "+1.2.3", AsStable))
	require.Equal(t, "12.3.0\n", out.String())

	// The settings file is still rejected by commands that read it.
	require.Error(t, Releases(context.Background(), opts))

	// An explicit log level override is still validated.
	opts.LogLevel = "loud"
	require.Error(t, Parse(context.Background(), opts, "1.2.3", AsStable))
}

// TestReleases lists configured release lines.
func TestReleases(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Releases.Nightly = version.New(1, 23, 0)

	var out bytes.Buffer

	require.NoError(t, Releases(context.Background(), &Options{ConfigPath: writeConfig(t, cfg), Out: &out}))
	require.Contains(t, out.String(), "1.20.0")
	require.Contains(t, out.String(), "0.123.0")
	require.Contains(t, out.String(), "123.0.0")
}

// TestInfo_MissingGit ensures an unavailable git binary only leaves commit fields unknown.
func TestInfo_MissingGit(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Git.Binary = "toolver-no-such-git-binary"
	cfg.Git.Dir = t.TempDir()

	var out bytes.Buffer

	opts := &Options{ConfigPath: writeConfig(t, cfg), Output: "json", Out: &out}
	require.NoError(t, Info(context.Background(), opts))

	var doc struct {
		Commit struct {
			Hash string `json:"hash"`
			Date string `json:"date"`
		} `json:"commit"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Equal(t, "unknown", doc.Commit.Hash)
	require.Equal(t, "unknown", doc.Commit.Date)
}

// TestInfo_GoGitBackend ensures a directory outside any repository yields unknown commit fields.
func TestInfo_GoGitBackend(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Git.Backend = gitinfo.BackendGoGit
	cfg.Git.Dir = t.TempDir()

	var out bytes.Buffer

	opts := &Options{ConfigPath: writeConfig(t, cfg), Output: "yaml", Out: &out}
	require.NoError(t, Info(context.Background(), opts))
	require.Contains(t, out.String(), "hash: unknown")
	require.Contains(t, out.String(), "stable_tool: 120.0.0")
}

// TestInfo_Errors covers a missing settings file, a bad log level and a bad format.
func TestInfo_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	require.Error(t, Info(context.Background(), &Options{ConfigPath: missing, Out: &out}))

	path := writeConfig(t, config.Default())
	require.Error(t, Info(context.Background(), &Options{ConfigPath: path, LogLevel: "loud", Out: &out}))
	require.Error(t, Info(context.Background(), &Options{ConfigPath: path, Output: "xml", Out: &out}))
}
