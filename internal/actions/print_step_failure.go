package actions

import (
	"errors"

	smerrors "squashmerge.dev/squashmerge/internal/errors"
	"squashmerge.dev/squashmerge/internal/tui"
)

// PrintStepFailure displays which step failed, the repository state it left
// behind, and how to get going again
func PrintStepFailure(stepErr *smerrors.StepError, resumable bool, splog *tui.Splog) {
	splog.Error("%s", tui.ColorRed("Squash merge stopped at step "+stepErr.Step))
	splog.Newline()

	if state := stepErr.State; state != nil {
		if state.CurrentBranch != "" {
			splog.Info("%s %s", tui.ColorYellow("Current branch:"), state.CurrentBranch)
		}
		if len(state.UnmergedFiles) > 0 {
			splog.Info("%s", tui.ColorYellow("Unmerged files:"))
			for _, file := range state.UnmergedFiles {
				splog.Info("  %s", tui.ColorRed(file))
			}
		}
		if len(state.StagedFiles) > 0 {
			splog.Info("%s", tui.ColorYellow("Staged files:"))
			for _, file := range state.StagedFiles {
				splog.Info("  %s", file)
			}
		}
		splog.Newline()
	}

	if !resumable {
		var checkoutErr *smerrors.CheckoutError
		if errors.As(stepErr, &checkoutErr) {
			splog.Tip("Check that %s exists: %s", checkoutErr.BranchName, tui.ColorCyan("git branch --list "+checkoutErr.BranchName))
		}
		return
	}

	if errors.Is(stepErr, smerrors.ErrUnresolvedConflicts) {
		splog.Info("%s", tui.ColorYellow("To fix and continue:"))
		splog.Info("(1) resolve the listed merge conflicts")
		splog.Info("(2) mark them as resolved with %s", tui.ColorCyan("git add <path>"))
		splog.Info("(3) run %s", tui.ColorCyan("squashmerge --continue"))
	} else {
		splog.Info("Fix the problem above, then run %s.", tui.ColorCyan("squashmerge --continue"))
	}
	splog.Info("It's safe to discard the squash merge with %s.", tui.ColorCyan("squashmerge --abort"))
}
