package git

import (
	"context"
	"fmt"
)

// GetUnmergedFiles returns the paths that are still in a conflicted state
func (r *CommandRunner) GetUnmergedFiles(ctx context.Context) ([]string, error) {
	files, err := r.RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list unmerged files: %w", err)
	}
	return files, nil
}

// GetStagedFiles returns the paths with changes in the index
func (r *CommandRunner) GetStagedFiles(ctx context.Context) ([]string, error) {
	files, err := r.RunLines(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return files, nil
}
