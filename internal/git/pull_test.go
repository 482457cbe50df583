package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"squashmerge.dev/squashmerge/internal/git"
	"squashmerge.dev/squashmerge/testhelpers"
)

func TestRemoteAndPull(t *testing.T) {
	ctx := context.Background()

	t.Run("reports no remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(scene.Dir)

		_, ok, err := runner.RemoteFor(ctx, "main")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("fast-forwards from the tracked remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := testhelpers.ReadmeSceneSetup(s); err != nil {
				return err
			}
			if _, err := s.Repo.CreateBareRemote("origin"); err != nil {
				return err
			}
			if err := s.Repo.CommitFile("y.txt", "y", "add y"); err != nil {
				return err
			}
			if err := s.Repo.PushBranch("origin", "main"); err != nil {
				return err
			}
			return s.Repo.RunGitCommand("reset", "--hard", "HEAD~1")
		})
		runner := git.NewCommandRunner(scene.Dir)

		remote, ok, err := runner.RemoteFor(ctx, "main")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "origin", remote)

		result, err := runner.PullBranch(ctx, remote, "main")
		require.NoError(t, err)
		require.Equal(t, git.PullDone, result)
		require.Equal(t, "y", testhelpers.Must(scene.Repo.ReadFile("y.txt")))

		result, err = runner.PullBranch(ctx, remote, "main")
		require.NoError(t, err)
		require.Equal(t, git.PullUnneeded, result)
	})

	t.Run("reports a diverged branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := testhelpers.ReadmeSceneSetup(s); err != nil {
				return err
			}
			if _, err := s.Repo.CreateBareRemote("origin"); err != nil {
				return err
			}
			if err := s.Repo.CommitFile("y.txt", "y", "add y"); err != nil {
				return err
			}
			if err := s.Repo.PushBranch("origin", "main"); err != nil {
				return err
			}
			if err := s.Repo.RunGitCommand("reset", "--hard", "HEAD~1"); err != nil {
				return err
			}
			return s.Repo.CommitFile("z.txt", "z", "add z")
		})
		runner := git.NewCommandRunner(scene.Dir)

		result, err := runner.PullBranch(ctx, "origin", "main")
		require.NoError(t, err)
		require.Equal(t, git.PullConflict, result)
		require.Equal(t, "diverged", result.String())
	})
}
