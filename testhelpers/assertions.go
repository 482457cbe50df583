// Package testhelpers provides testing utilities for squashmerge,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCurrentBranch asserts which branch is checked out.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()
	branch, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, branch, "unexpected current branch")
}

// ExpectStaged asserts that exactly the given paths are staged.
func ExpectStaged(t *testing.T, repo *GitRepo, expected ...string) {
	t.Helper()
	staged, err := repo.StagedFiles()
	require.NoError(t, err)

	sort.Strings(staged)
	want := append([]string{}, expected...)
	sort.Strings(want)
	require.Equal(t, want, staged, "staged files do not match")
}

// ExpectIndexContent asserts the staged content of path.
func ExpectIndexContent(t *testing.T, repo *GitRepo, path, expected string) {
	t.Helper()
	content, err := repo.ShowFileAtRef("", path)
	require.NoError(t, err)
	require.Equal(t, expected, content, "index content of %s does not match", path)
}
