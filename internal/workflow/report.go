package workflow

import (
	"context"
	"fmt"

	"squashmerge.dev/squashmerge/internal/tui"
)

func (o *Orchestrator) report(ctx context.Context, run *Run) error {
	staged, err := o.git.GetStagedFiles(ctx)
	if err != nil {
		return err
	}
	run.Staged = staged

	o.splog.Newline()
	if len(staged) == 0 {
		o.splog.Info("Nothing to commit: %s has no changes relative to %s.", run.FeatureBranch, run.MainBranch)
		o.splog.Info("  %s %s", tui.ColorCyan(run.SuggestedCommitCommand()), tui.ColorDim("(nothing to commit)"))
		return nil
	}

	o.splog.Info("%s", tui.ColorGreen(fmt.Sprintf("Squash merge of %s into %s is staged (%d file(s)):", run.FeatureBranch, run.MainBranch, len(staged))))
	for _, path := range staged {
		o.splog.Info("  %s", tui.ColorDim(path))
	}
	o.splog.Newline()
	o.splog.Info("Review the staged changes, then run:")
	o.splog.Info("  %s", tui.ColorCyan(run.SuggestedCommitCommand()))
	return nil
}
