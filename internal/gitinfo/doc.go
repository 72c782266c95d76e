// Package gitinfo looks up the current commit hash and commit date.
//
// CommandSource shells out to git through a Runner, RepositorySource reads
// the repository in-process with go-git. Both collapse every failure (missing
// binary, not a repository, non-UTF-8 output) into "no value"; the cause is
// only visible in debug logs.
package gitinfo
