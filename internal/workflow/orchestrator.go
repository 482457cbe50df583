package workflow

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"

	"squashmerge.dev/squashmerge/internal/conflict"
	smerrors "squashmerge.dev/squashmerge/internal/errors"
	"squashmerge.dev/squashmerge/internal/git"
	"squashmerge.dev/squashmerge/internal/tui"
)

// StepName identifies one step of the sequence
type StepName string

// Steps in execution order
const (
	StepValidate        StepName = "validate"
	StepCheckoutMain    StepName = "checkout-main"
	StepSync            StepName = "sync"
	StepSquashMerge     StepName = "squash-merge"
	StepClassify        StepName = "classify-conflicts"
	StepResolve         StepName = "resolve"
	StepStage           StepName = "stage"
	StepPropagateReadme StepName = "propagate-readme"
	StepReport          StepName = "report"
)

// Step is one named transition of the sequence
type Step struct {
	Name StepName
	// ResumeAt is where a continued run restarts after this step failed
	ResumeAt StepName
	skip     func(run *Run) bool
	plan     func(ctx context.Context, run *Run) []string
	exec     func(ctx context.Context, run *Run) error
}

// Run carries the invocation and everything the steps learn along the way
type Run struct {
	Invocation

	Sync            git.PullResult
	Merge           git.MergeResult
	Classifications []conflict.Classification
	Restored        []string
	Resolved        []string
	Staged          []string
	ReadmeCommitted bool
	Completed       []StepName
}

// PlannedStep is a step as shown by a dry run
type PlannedStep struct {
	Name     StepName
	Skipped  bool
	Commands []string
}

// Orchestrator runs the squash merge sequence against a git.Runner
type Orchestrator struct {
	git   git.Runner
	splog *tui.Splog
	steps []Step

	// mkdirTemp creates the parent directory of the README worktree
	mkdirTemp func() (string, error)
}

// New creates an Orchestrator
func New(runner git.Runner, splog *tui.Splog) *Orchestrator {
	o := &Orchestrator{
		git:   runner,
		splog: splog,
		mkdirTemp: func() (string, error) {
			return os.MkdirTemp("", "squashmerge-readme-*")
		},
	}
	o.steps = []Step{
		{Name: StepValidate, ResumeAt: StepValidate, exec: o.validate},
		{Name: StepCheckoutMain, ResumeAt: StepCheckoutMain, plan: o.planCheckoutMain, exec: o.checkoutMain},
		{Name: StepSync, ResumeAt: StepSync, plan: o.planSync, exec: o.syncMain},
		{Name: StepSquashMerge, ResumeAt: StepSquashMerge, plan: o.planSquashMerge, exec: o.squashMerge},
		{Name: StepClassify, ResumeAt: StepClassify, plan: o.planClassify, exec: o.classify},
		{Name: StepResolve, ResumeAt: StepClassify, plan: o.planResolve, exec: o.resolve},
		{Name: StepStage, ResumeAt: StepStage, plan: o.planStage, exec: o.stage},
		{Name: StepPropagateReadme, ResumeAt: StepPropagateReadme, skip: skipPropagate, plan: o.planPropagate, exec: o.propagateReadme},
		{Name: StepReport, ResumeAt: StepReport, exec: o.report},
	}
	return o
}

// Steps returns the sequence in execution order
func (o *Orchestrator) Steps() []Step {
	return o.steps
}

// ResumePoint returns the step a continued run starts at after failed failed
func (o *Orchestrator) ResumePoint(failed StepName) StepName {
	if step, ok := lo.Find(o.steps, func(s Step) bool { return s.Name == failed }); ok {
		return step.ResumeAt
	}
	return StepValidate
}

func (o *Orchestrator) indexOf(name StepName) (int, error) {
	_, idx, ok := lo.FindIndexOf(o.steps, func(s Step) bool { return s.Name == name })
	if !ok {
		return 0, fmt.Errorf("unknown step %q", name)
	}
	return idx, nil
}

// Execute runs the sequence starting at from. validate always runs first.
// The returned Run is non-nil even on failure and records the completed steps.
// Errors are *errors.StepError values.
func (o *Orchestrator) Execute(ctx context.Context, inv Invocation, from StepName) (*Run, error) {
	run := &Run{Invocation: inv}

	start, err := o.indexOf(from)
	if err != nil {
		return run, err
	}

	for i, step := range o.steps {
		if i != 0 && i < start {
			continue
		}
		if step.skip != nil && step.skip(run) {
			o.splog.Debug("Skipping %s", step.Name)
			continue
		}

		o.splog.Debug("Running step %s", step.Name)
		if err := step.exec(ctx, run); err != nil {
			return run, smerrors.NewStepError(string(step.Name), err, o.snapshot(ctx))
		}
		run.Completed = append(run.Completed, step.Name)
	}

	return run, nil
}

// Plan validates the invocation and describes what Execute would do,
// without touching the repository beyond read-only queries.
func (o *Orchestrator) Plan(ctx context.Context, inv Invocation, from StepName) ([]PlannedStep, error) {
	run := &Run{Invocation: inv}
	if err := o.validate(ctx, run); err != nil {
		return nil, smerrors.NewStepError(string(StepValidate), err, nil)
	}

	start, err := o.indexOf(from)
	if err != nil {
		return nil, err
	}

	var planned []PlannedStep
	for i, step := range o.steps {
		if i != 0 && i < start {
			continue
		}
		p := PlannedStep{Name: step.Name}
		if step.skip != nil && step.skip(run) {
			p.Skipped = true
		} else if step.plan != nil {
			p.Commands = step.plan(ctx, run)
		}
		planned = append(planned, p)
	}
	return planned, nil
}

// snapshot captures the repository state after a failure. Errors are ignored;
// whatever could be read is returned.
func (o *Orchestrator) snapshot(ctx context.Context) *smerrors.RepoState {
	state := &smerrors.RepoState{}
	if branch, err := o.git.CurrentBranch(ctx); err == nil {
		state.CurrentBranch = branch
	}
	if staged, err := o.git.GetStagedFiles(ctx); err == nil {
		state.StagedFiles = staged
	}
	if unmerged, err := o.git.GetUnmergedFiles(ctx); err == nil {
		state.UnmergedFiles = unmerged
	}
	return state
}

func skipPropagate(run *Run) bool {
	return !run.UpdateReadme
}
