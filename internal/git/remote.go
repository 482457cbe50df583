package git

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// RemoteFor returns the remote branchName tracks. It falls back to origin, or
// the first configured remote, and reports false when there are no remotes.
func (r *CommandRunner) RemoteFor(ctx context.Context, branchName string) (string, bool, error) {
	remote, err := r.Run(ctx, "config", "--get", fmt.Sprintf("branch.%s.remote", branchName))
	if err == nil && remote != "" {
		return remote, true, nil
	}

	remotes, err := r.RunLines(ctx, "remote")
	if err != nil {
		return "", false, fmt.Errorf("failed to list remotes: %w", err)
	}
	if len(remotes) == 0 {
		return "", false, nil
	}
	if lo.Contains(remotes, "origin") {
		return "origin", true, nil
	}
	return remotes[0], true, nil
}
