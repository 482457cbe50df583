package actions

import (
	"errors"
	"fmt"

	"squashmerge.dev/squashmerge/internal/config"
	smerrors "squashmerge.dev/squashmerge/internal/errors"
	"squashmerge.dev/squashmerge/internal/runtime"
	"squashmerge.dev/squashmerge/internal/tui"
	"squashmerge.dev/squashmerge/internal/workflow"
)

// SquashMergeOptions contains options for a fresh squash merge run
type SquashMergeOptions struct {
	Args         []string
	UpdateReadme bool
	MainBranch   string
	Strategies   []string
	StrictSync   bool
	DryRun       bool
}

// SquashMergeAction squash merges the feature branch named in opts.Args into main
func SquashMergeAction(ctx *runtime.Context, opts SquashMergeOptions) error {
	inv, err := workflow.ParseInvocation(opts.Args, opts.UpdateReadme)
	if err != nil {
		return err
	}
	inv, err = completeInvocation(ctx.Config, inv, opts.MainBranch, opts.StrictSync, opts.Strategies)
	if err != nil {
		return err
	}

	orch := workflow.New(ctx.Git, ctx.Splog)
	if opts.DryRun {
		return printPlan(ctx, orch, inv, workflow.StepValidate)
	}

	if config.HasContinuationState(ctx.RepoRoot) {
		return fmt.Errorf("%w: run with --continue to resume it or --abort to discard it", smerrors.ErrOperationInProgress)
	}

	startBranch, err := ctx.Git.CurrentBranch(ctx.Context)
	if err != nil {
		ctx.Splog.Debug("Could not determine the current branch: %v", err)
	}

	return execute(ctx, orch, inv, workflow.StepValidate, startBranch)
}

// execute runs the sequence from the given step, records continuation state
// when a step fails after the repository was touched, and clears it on success.
func execute(ctx *runtime.Context, orch *workflow.Orchestrator, inv workflow.Invocation, from workflow.StepName, startBranch string) error {
	run, err := orch.Execute(ctx.Context, inv, from)
	if err == nil {
		if clearErr := config.ClearContinuationState(ctx.RepoRoot); clearErr != nil {
			ctx.Splog.Debug("Failed to clear continuation state: %v", clearErr)
		}
		return nil
	}

	var stepErr *smerrors.StepError
	if !errors.As(err, &stepErr) {
		return err
	}

	failed := workflow.StepName(stepErr.Step)
	resumable := failed != workflow.StepValidate && failed != workflow.StepCheckoutMain
	if resumable {
		state := &config.ContinuationState{
			MainBranch:    inv.MainBranch,
			FeatureBranch: inv.FeatureBranch,
			StartBranch:   startBranch,
			UpdateReadme:  inv.UpdateReadme,
			StrictSync:    inv.StrictSync,
			Strategies:    inv.Strategies,
			FailedStep:    stepErr.Step,
			ResumeFrom:    string(orch.ResumePoint(failed)),
		}
		for _, name := range run.Completed {
			state.Completed = append(state.Completed, string(name))
		}
		if persistErr := config.PersistContinuationState(ctx.RepoRoot, state); persistErr != nil {
			return fmt.Errorf("failed to persist continuation: %w", persistErr)
		}
	}

	PrintStepFailure(stepErr, resumable, ctx.Splog)
	return err
}

func printPlan(ctx *runtime.Context, orch *workflow.Orchestrator, inv workflow.Invocation, from workflow.StepName) error {
	planned, err := orch.Plan(ctx.Context, inv, from)
	if err != nil {
		return err
	}

	ctx.Splog.Info("%s", tui.ColorYellow(fmt.Sprintf("Dry run: squash merge %s into %s", inv.FeatureBranch, inv.MainBranch)))
	for i, step := range planned {
		if step.Skipped {
			ctx.Splog.Info("%d. %s %s", i+1, step.Name, tui.ColorDim("(skipped)"))
			continue
		}
		ctx.Splog.Info("%d. %s", i+1, tui.ColorCyan(string(step.Name)))
		for _, command := range step.Commands {
			ctx.Splog.Info("     %s", command)
		}
	}
	ctx.Splog.Newline()
	ctx.Splog.Info("Then run: %s", inv.SuggestedCommitCommand())
	return nil
}
