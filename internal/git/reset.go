package git

import (
	"context"
	"fmt"
)

// ResetMerge discards a squash merge left in the index and working tree,
// keeping unrelated local changes
func (r *CommandRunner) ResetMerge(ctx context.Context) error {
	_, err := r.Run(ctx, "reset", "--merge")
	if err != nil {
		return fmt.Errorf("failed to reset merge: %w", err)
	}
	return nil
}
