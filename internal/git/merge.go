package git

import (
	"context"
	"fmt"
	"strings"
)

// MergeResult describes the outcome of a squash merge
type MergeResult struct {
	// Conflicts lists the paths git left unmerged
	Conflicts []string
	// UpToDate is set when the branch had nothing to merge
	UpToDate bool
}

// HasConflicts reports whether the merge left unmerged paths
func (m MergeResult) HasConflicts() bool {
	return len(m.Conflicts) > 0
}

// ConflictSide selects one side of a conflicted path
type ConflictSide int

const (
	// SideOurs is the checked out branch
	SideOurs ConflictSide = iota
	// SideTheirs is the branch being merged in
	SideTheirs
)

func (s ConflictSide) flag() string {
	if s == SideTheirs {
		return "--theirs"
	}
	return "--ours"
}

// SquashMerge merges branchName into the working tree and index as a single
// uncommitted change. A merge that stops on conflicts is not an error; the
// conflicted paths are returned in the result.
func (r *CommandRunner) SquashMerge(ctx context.Context, branchName string) (MergeResult, error) {
	output, err := r.Run(ctx, "merge", "--squash", branchName)
	if err != nil {
		unmerged, unmergedErr := r.GetUnmergedFiles(ctx)
		if unmergedErr == nil && len(unmerged) > 0 {
			return MergeResult{Conflicts: unmerged}, nil
		}
		return MergeResult{}, fmt.Errorf("failed to squash merge %s: %w", branchName, err)
	}

	upToDate := strings.Contains(output, "Already up to date") || strings.Contains(output, "Already up-to-date")
	return MergeResult{UpToDate: upToDate}, nil
}

// CheckoutConflictSide replaces a conflicted path with one side's version
func (r *CommandRunner) CheckoutConflictSide(ctx context.Context, side ConflictSide, path string) error {
	_, err := r.Run(ctx, "checkout", side.flag(), "--", path)
	if err != nil {
		return fmt.Errorf("failed to checkout %s version of %s: %w", strings.TrimPrefix(side.flag(), "--"), path, err)
	}
	return nil
}
