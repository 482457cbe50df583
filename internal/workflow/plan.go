package workflow

import (
	"context"
	"fmt"

	"squashmerge.dev/squashmerge/internal/conflict"
)

func (o *Orchestrator) planCheckoutMain(_ context.Context, run *Run) []string {
	return []string{"git checkout " + run.MainBranch}
}

func (o *Orchestrator) planSync(ctx context.Context, run *Run) []string {
	remote, ok, err := o.git.RemoteFor(ctx, run.MainBranch)
	if err != nil || !ok {
		return []string{"(no remote configured, sync skipped)"}
	}
	return []string{
		fmt.Sprintf("git fetch %s %s", remote, run.MainBranch),
		fmt.Sprintf("git merge --ff-only %s/%s", remote, run.MainBranch),
	}
}

func (o *Orchestrator) planSquashMerge(_ context.Context, run *Run) []string {
	return []string{"git merge --squash " + run.FeatureBranch}
}

func (o *Orchestrator) planClassify(_ context.Context, _ *Run) []string {
	return []string{"git diff --name-only --diff-filter=U"}
}

func (o *Orchestrator) planResolve(_ context.Context, run *Run) []string {
	var commands []string
	for _, path := range run.Policy.Pinned {
		commands = append(commands,
			fmt.Sprintf("git checkout %s -- %s", run.MainBranch, path),
			"git add -- "+path,
		)
	}
	for _, rule := range run.Policy.Rules {
		if rule.Strategy == conflict.StrategyManual {
			continue
		}
		commands = append(commands, fmt.Sprintf("git checkout --%s -- <conflicted %s>", rule.Strategy, rule.Pattern))
	}
	if run.Policy.Default != conflict.StrategyManual {
		commands = append(commands, fmt.Sprintf("git checkout --%s -- <other conflicted paths>", run.Policy.Default))
	}
	return commands
}

func (o *Orchestrator) planStage(_ context.Context, _ *Run) []string {
	return []string{"git add -A"}
}

func (o *Orchestrator) planPropagate(_ context.Context, run *Run) []string {
	return []string{
		"git worktree add <tmp> " + run.FeatureBranch,
		fmt.Sprintf("git checkout %s -- %s", run.MainBranch, run.Readme()),
		fmt.Sprintf("git commit -m %q", run.ReadmeCommitMessage()),
		"git worktree remove --force <tmp>",
	}
}
