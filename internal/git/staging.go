package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func (r *CommandRunner) StageAll(ctx context.Context) error {
	_, err := r.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// StagePaths stages the given paths, marking any conflicts on them resolved
func (r *CommandRunner) StagePaths(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := r.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
