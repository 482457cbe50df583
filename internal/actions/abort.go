package actions

import (
	"fmt"

	"squashmerge.dev/squashmerge/internal/config"
	"squashmerge.dev/squashmerge/internal/runtime"
	"squashmerge.dev/squashmerge/internal/tui"
)

// AbortOptions contains options for the abort command
type AbortOptions struct {
	Force  bool
	DryRun bool
}

// AbortAction discards an interrupted squash merge
func AbortAction(ctx *runtime.Context, opts AbortOptions) error {
	splog := ctx.Splog

	continuation, err := config.GetContinuationState(ctx.RepoRoot)
	if err != nil {
		splog.Info("No squash merge in progress to abort.")
		return nil
	}

	if opts.DryRun {
		printAbortPlan(ctx, continuation)
		return nil
	}

	// Confirm unless force is used
	if !opts.Force {
		msg := fmt.Sprintf("Discard the squash merge of %s into %s? Staged changes on %s will be lost.",
			continuation.FeatureBranch, continuation.MainBranch, continuation.MainBranch)
		confirmed, err := tui.PromptConfirm(msg, false)
		if err != nil {
			return fmt.Errorf("failed to get confirmation (use --force to skip it): %w", err)
		}
		if !confirmed {
			splog.Info("Abort canceled.")
			return nil
		}
	}

	splog.Info("Discarding squash merged changes...")
	if err := ctx.Git.ResetMerge(ctx.Context); err != nil {
		return fmt.Errorf("failed to reset merge: %w", err)
	}

	if returnsToStart(continuation) {
		if err := ctx.Git.CheckoutBranch(ctx.Context, continuation.StartBranch); err != nil {
			splog.Warn("Could not return to %s: %v", continuation.StartBranch, err)
		}
	}

	if err := config.ClearContinuationState(ctx.RepoRoot); err != nil {
		return err
	}

	splog.Info("Squash merge of %s aborted.", tui.ColorCyan(continuation.FeatureBranch))
	return nil
}

func returnsToStart(continuation *config.ContinuationState) bool {
	return continuation.StartBranch != "" && continuation.StartBranch != continuation.MainBranch
}

func printAbortPlan(ctx *runtime.Context, continuation *config.ContinuationState) {
	splog := ctx.Splog
	splog.Info("%s", tui.ColorYellow(fmt.Sprintf("Dry run: abort squash merge of %s into %s", continuation.FeatureBranch, continuation.MainBranch)))
	splog.Info("     git reset --merge")
	if returnsToStart(continuation) {
		splog.Info("     git checkout %s", continuation.StartBranch)
	}
	splog.Info("     (clear the saved continuation state)")
}
