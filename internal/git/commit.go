package git

import (
	"context"
	"fmt"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message  string
	NoVerify bool
}

// Commit records the index as a new commit on the checked out branch
func (r *CommandRunner) Commit(ctx context.Context, opts CommitOptions) error {
	if opts.Message == "" {
		return fmt.Errorf("failed to commit: empty commit message")
	}

	args := []string{"commit", "-m", opts.Message}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}

	_, err := r.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
