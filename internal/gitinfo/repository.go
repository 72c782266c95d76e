package gitinfo

import (
	"context"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/oshokin/toolver/internal/logger"
)

const (
	// shortHashLength matches the default abbreviation of `git rev-parse --short`.
	shortHashLength = 7
	// shortDateLayout matches `git log --date=short`.
	shortDateLayout = "2006-01-02"
)

// RepositorySource answers commit queries by reading the repository with go-git.
// It renders the same text the git binary would print, without spawning a process.
type RepositorySource struct {
	// Dir is any path inside the work tree. Empty means the current directory.
	Dir string
}

// CommitHash returns the 7-character abbreviated HEAD hash followed by a newline.
func (s *RepositorySource) CommitHash(ctx context.Context) (string, bool) {
	commit, err := s.head()
	if err != nil {
		logger.DebugKV(ctx, "Git query failed", "query", "commit_hash", "error", err)
		return "", false
	}

	return commit.Hash.String()[:shortHashLength] + "\n", true
}

// CommitDate returns the HEAD committer date in the commit's own time zone.
func (s *RepositorySource) CommitDate(ctx context.Context) (string, bool) {
	commit, err := s.head()
	if err != nil {
		logger.DebugKV(ctx, "Git query failed", "query", "commit_date", "error", err)
		return "", false
	}

	return commit.Committer.When.Format(shortDateLayout), true
}

// head opens the repository containing Dir and resolves its HEAD commit.
func (s *RepositorySource) head() (*object.Commit, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit: %w", err)
	}

	return commit, nil
}
