package git

import (
	"context"
	"fmt"
)

// AddWorktree adds a new worktree at the specified path
// branch is the branch to checkout in the worktree
// if detach is true, the worktree will be in detached HEAD state
func (r *CommandRunner) AddWorktree(ctx context.Context, path string, branch string, detach bool) error {
	args := []string{"worktree", "add"}
	if detach {
		args = append(args, "--detach")
	}
	args = append(args, path)
	if branch != "" {
		args = append(args, branch)
	}

	_, err := r.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to add worktree at %s: %w", path, err)
	}
	return nil
}

// RemoveWorktree removes the worktree at the specified path
func (r *CommandRunner) RemoveWorktree(ctx context.Context, path string) error {
	_, err := r.Run(ctx, "worktree", "remove", "--force", path)
	if err != nil {
		return fmt.Errorf("failed to remove worktree at %s: %w", path, err)
	}
	return nil
}
