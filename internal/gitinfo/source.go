package gitinfo

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/oshokin/toolver/internal/logger"
)

// Source provides the commit hash and commit date of the current checkout.
// The boolean result reports whether a value was found.
type Source interface {
	CommitHash(ctx context.Context) (string, bool)
	CommitDate(ctx context.Context) (string, bool)
}

const (
	// BackendExec selects CommandSource.
	BackendExec = "exec"
	// BackendGoGit selects RepositorySource.
	BackendGoGit = "go-git"

	// DefaultBinary is the git executable resolved from PATH.
	DefaultBinary = "git"
)

// ErrUnknownBackend is returned by NewSource for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown git backend")

// NewSource builds the Source for the named backend rooted at dir.
// An empty backend means BackendExec, an empty binary means DefaultBinary.
//
//nolint:ireturn // Callers only need the Source behavior.
func NewSource(backend, dir, binary string) (Source, error) {
	switch backend {
	case "", BackendExec:
		return &CommandSource{
			Runner: ExecRunner{Dir: dir},
			Binary: binary,
		}, nil
	case BackendGoGit:
		return &RepositorySource{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// CommitHash returns the abbreviated HEAD commit of the working directory,
// as printed by `git rev-parse --short HEAD` (trailing newline included).
func CommitHash(ctx context.Context) (string, bool) {
	return defaultSource().CommitHash(ctx)
}

// CommitDate returns the last commit date of the working directory in
// YYYY-MM-DD form, as printed by `git log -1 --date=short --pretty=format:%cd`.
func CommitDate(ctx context.Context) (string, bool) {
	return defaultSource().CommitDate(ctx)
}

func defaultSource() *CommandSource {
	return &CommandSource{
		Runner: ExecRunner{},
	}
}

// CommandSource answers commit queries by running the git binary.
type CommandSource struct {
	// Runner executes the git binary.
	Runner Runner
	// Binary is the git executable name or path. Empty means DefaultBinary.
	Binary string
}

// CommitHash runs `git rev-parse --short HEAD` and returns its raw output.
func (s *CommandSource) CommitHash(ctx context.Context) (string, bool) {
	return s.query(ctx, "commit_hash", "rev-parse", "--short", "HEAD")
}

// CommitDate runs `git log -1 --date=short --pretty=format:%cd` and returns its raw output.
func (s *CommandSource) CommitDate(ctx context.Context) (string, bool) {
	return s.query(ctx, "commit_date", "log", "-1", "--date=short", "--pretty=format:%cd")
}

// query runs git with args and returns stdout verbatim when it is valid UTF-8.
func (s *CommandSource) query(ctx context.Context, name string, args ...string) (string, bool) {
	binary := s.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	out, err := s.Runner.Run(ctx, binary, args...)
	if err != nil {
		logger.DebugKV(ctx, "Git query failed", "query", name, "error", err)
		return "", false
	}

	if !utf8.Valid(out) {
		logger.DebugKV(ctx, "Git query returned non-UTF-8 output", "query", name, "bytes", len(out))
		return "", false
	}

	return string(out), true
}
