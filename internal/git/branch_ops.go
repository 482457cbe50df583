package git

import (
	"context"
	"fmt"

	smerrors "squashmerge.dev/squashmerge/internal/errors"
)

// CheckoutBranch checks out an existing branch
func (r *CommandRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", branchName)
	if err != nil {
		return smerrors.NewCheckoutError(branchName, err)
	}
	return nil
}

// CurrentBranch returns the branch HEAD points at
func (r *CommandRunner) CurrentBranch(_ context.Context) (string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

// CheckoutPathFromRef copies path as it exists at ref into the working tree and index
func (r *CommandRunner) CheckoutPathFromRef(ctx context.Context, ref, path string) error {
	_, err := r.Run(ctx, "checkout", ref, "--", path)
	if err != nil {
		return fmt.Errorf("failed to checkout %s from %s: %w", path, ref, err)
	}
	return nil
}

// PathExistsAtRef reports whether path is present in the tree of ref
func (r *CommandRunner) PathExistsAtRef(_ context.Context, ref, path string) (bool, error) {
	repo, err := r.openRepository()
	if err != nil {
		return false, err
	}
	return repo.PathExistsAtRef(ref, path)
}

// PathExistsInWorkingTree reports whether path is present in the working tree
func (r *CommandRunner) PathExistsInWorkingTree(_ context.Context, path string) (bool, error) {
	repo, err := r.openRepository()
	if err != nil {
		return false, err
	}
	return repo.PathExistsInWorkingTree(path)
}

func (r *CommandRunner) openRepository() (*Repository, error) {
	dir := r.workingDir
	if dir == "" {
		dir = "."
	}
	return OpenRepository(dir)
}

// ListBranches returns the names of all local branches
func (r *CommandRunner) ListBranches(_ context.Context) ([]string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}
