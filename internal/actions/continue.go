package actions

import (
	"squashmerge.dev/squashmerge/internal/config"
	"squashmerge.dev/squashmerge/internal/runtime"
	"squashmerge.dev/squashmerge/internal/workflow"
)

// ContinueOptions are options for continuing an interrupted run
type ContinueOptions struct {
	DryRun bool
}

// ContinueAction resumes the run recorded in the continuation state
func ContinueAction(ctx *runtime.Context, opts ContinueOptions) error {
	continuation, err := config.GetContinuationState(ctx.RepoRoot)
	if err != nil {
		return err
	}

	inv := workflow.Invocation{
		FeatureBranch: continuation.FeatureBranch,
		UpdateReadme:  continuation.UpdateReadme,
	}
	inv, err = completeInvocation(ctx.Config, inv, continuation.MainBranch, continuation.StrictSync, continuation.Strategies)
	if err != nil {
		return err
	}

	from := workflow.StepName(continuation.ResumeFrom)
	if from == "" {
		from = workflow.StepValidate
	}

	orch := workflow.New(ctx.Git, ctx.Splog)
	if opts.DryRun {
		return printPlan(ctx, orch, inv, from)
	}

	ctx.Splog.Info("Continuing squash merge of %s into %s from %s...", continuation.FeatureBranch, continuation.MainBranch, from)
	return execute(ctx, orch, inv, from, continuation.StartBranch)
}
