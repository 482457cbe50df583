package git

import (
	"context"
	"fmt"
)

// PullResult represents the result of a pull operation
type PullResult int

const (
	// PullDone indicates the pull was successful
	PullDone PullResult = iota
	// PullUnneeded indicates no pull was needed
	PullUnneeded
	// PullConflict indicates the local branch has diverged and cannot be fast-forwarded
	PullConflict
	// PullSkipped indicates there was nothing to pull from
	PullSkipped
)

func (p PullResult) String() string {
	switch p {
	case PullDone:
		return "done"
	case PullUnneeded:
		return "unneeded"
	case PullConflict:
		return "diverged"
	case PullSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("PullResult(%d)", int(p))
	}
}

// PullBranch fast-forwards the checked out branch from remote.
// The branch must already be checked out.
func (r *CommandRunner) PullBranch(ctx context.Context, remote, branchName string) (PullResult, error) {
	oldRev, err := r.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullConflict, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, err := r.Run(ctx, "fetch", remote, branchName); err != nil {
		return PullConflict, fmt.Errorf("failed to fetch %s from %s: %w", branchName, remote, err)
	}

	// Try to merge (fast-forward only)
	_, err = r.Run(ctx, "merge", "--ff-only", fmt.Sprintf("%s/%s", remote, branchName))
	if err != nil {
		return PullConflict, nil
	}

	newRev, err := r.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullDone, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if oldRev == newRev {
		return PullUnneeded, nil
	}
	return PullDone, nil
}
