package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"squashmerge.dev/squashmerge/internal/conflict"
	smerrors "squashmerge.dev/squashmerge/internal/errors"
	"squashmerge.dev/squashmerge/internal/git"
	"squashmerge.dev/squashmerge/internal/tui"
)

func (o *Orchestrator) validate(_ context.Context, run *Run) error {
	return run.Validate()
}

func (o *Orchestrator) checkoutMain(ctx context.Context, run *Run) error {
	o.splog.Info("Checking out %s...", tui.ColorCyan(run.MainBranch))
	return o.git.CheckoutBranch(ctx, run.MainBranch)
}

func (o *Orchestrator) syncMain(ctx context.Context, run *Run) error {
	remote, ok, err := o.git.RemoteFor(ctx, run.MainBranch)
	if err != nil {
		return o.syncFailed(run, err)
	}
	if !ok {
		run.Sync = git.PullSkipped
		o.splog.Warn("No remote configured, skipping sync of %s.", run.MainBranch)
		return nil
	}

	o.splog.Info("Pulling %s from %s...", tui.ColorCyan(run.MainBranch), remote)
	result, err := o.git.PullBranch(ctx, remote, run.MainBranch)
	run.Sync = result
	if err != nil {
		return o.syncFailed(run, err)
	}

	switch result {
	case git.PullConflict:
		return o.syncFailed(run, fmt.Errorf("%s has diverged from %s/%s and cannot be fast-forwarded", run.MainBranch, remote, run.MainBranch))
	case git.PullUnneeded:
		o.splog.Info("%s is up to date.", run.MainBranch)
	default:
		o.splog.Info("%s fast-forwarded.", tui.ColorGreen(run.MainBranch))
	}
	return nil
}

// syncFailed stops the run only under strict sync; otherwise the failure is
// reported and the merge goes ahead against the local main.
func (o *Orchestrator) syncFailed(run *Run, err error) error {
	if run.StrictSync {
		return fmt.Errorf("%w: %v", smerrors.ErrSyncFailed, err)
	}
	o.splog.Warn("Could not sync %s, continuing with the local branch: %v", run.MainBranch, err)
	return nil
}

func (o *Orchestrator) squashMerge(ctx context.Context, run *Run) error {
	o.splog.Info("Squash merging %s into %s...", tui.ColorCyan(run.FeatureBranch), tui.ColorCyan(run.MainBranch))
	result, err := o.git.SquashMerge(ctx, run.FeatureBranch)
	if err != nil {
		return err
	}
	run.Merge = result

	switch {
	case result.HasConflicts():
		o.splog.Warn("Squash merge stopped with %d conflicted path(s).", len(result.Conflicts))
	case result.UpToDate:
		o.splog.Info("%s has nothing to merge.", run.FeatureBranch)
	}
	return nil
}

func (o *Orchestrator) classify(ctx context.Context, run *Run) error {
	unmerged, err := o.git.GetUnmergedFiles(ctx)
	if err != nil {
		return err
	}

	run.Classifications = conflict.Classify(run.Policy, lo.Union(run.Merge.Conflicts, unmerged))
	for _, c := range run.Classifications {
		if c.Pinned {
			o.splog.Info("  %s: conflicted, keeping %s's version", c.Path, run.MainBranch)
			continue
		}
		o.splog.Info("  %s: conflicted, strategy %s", c.Path, c.Strategy)
	}
	return nil
}

func (o *Orchestrator) resolve(ctx context.Context, run *Run) error {
	var errs *multierror.Error

	for _, path := range run.Policy.Pinned {
		restored, err := o.restoreFromMain(ctx, run, path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if restored {
			run.Restored = append(run.Restored, path)
		}
	}

	unresolved := conflict.Manual(run.Classifications)
	for _, c := range run.Classifications {
		if c.Pinned {
			if !lo.Contains(run.Restored, c.Path) {
				unresolved = append(unresolved, c.Path)
			}
			continue
		}

		var side git.ConflictSide
		switch c.Strategy {
		case conflict.StrategyOurs:
			side = git.SideOurs
		case conflict.StrategyTheirs:
			side = git.SideTheirs
		default:
			continue
		}

		if err := o.git.CheckoutConflictSide(ctx, side, c.Path); err != nil {
			errs = multierror.Append(errs, err)
			unresolved = append(unresolved, c.Path)
			continue
		}
		if err := o.git.StagePaths(ctx, c.Path); err != nil {
			errs = multierror.Append(errs, err)
			unresolved = append(unresolved, c.Path)
			continue
		}
		run.Resolved = append(run.Resolved, c.Path)
		o.splog.Info("Resolved %s using %s.", c.Path, c.Strategy)
	}

	if len(unresolved) > 0 {
		sort.Strings(unresolved)
		unresolvedErr := smerrors.NewUnresolvedConflictsError(unresolved)
		if errs == nil {
			return unresolvedErr
		}
		return multierror.Append(unresolvedErr, errs.Errors...)
	}
	return errs.ErrorOrNil()
}

// restoreFromMain replaces path in the working tree and index with main's
// version when the merge left it in the working tree or conflicted. A clean
// deletion by the feature branch stays staged, as do paths main does not have.
func (o *Orchestrator) restoreFromMain(ctx context.Context, run *Run, path string) (bool, error) {
	present, err := o.git.PathExistsInWorkingTree(ctx, path)
	if err != nil {
		return false, err
	}
	conflicted := lo.ContainsBy(run.Classifications, func(c conflict.Classification) bool {
		return c.Path == path
	})
	if !present && !conflicted {
		o.splog.Debug("%s is not in the working tree, leaving it as merged", path)
		return false, nil
	}

	exists, err := o.git.PathExistsAtRef(ctx, run.MainBranch, path)
	if err != nil {
		return false, err
	}
	if !exists {
		o.splog.Debug("%s does not exist on %s, leaving it as merged", path, run.MainBranch)
		return false, nil
	}

	if err := o.git.CheckoutPathFromRef(ctx, run.MainBranch, path); err != nil {
		return false, err
	}
	if err := o.git.StagePaths(ctx, path); err != nil {
		return false, err
	}
	o.splog.Info("Kept %s's version of %s.", run.MainBranch, path)
	return true, nil
}

func (o *Orchestrator) stage(ctx context.Context, run *Run) error {
	o.splog.Info("Staging changes...")
	if err := o.git.StageAll(ctx); err != nil {
		return err
	}
	staged, err := o.git.GetStagedFiles(ctx)
	if err != nil {
		return err
	}
	run.Staged = staged
	return nil
}

func (o *Orchestrator) propagateReadme(ctx context.Context, run *Run) error {
	readme := run.Readme()
	o.splog.Info("Updating %s on %s...", readme, tui.ColorCyan(run.FeatureBranch))

	exists, err := o.git.PathExistsAtRef(ctx, run.MainBranch, readme)
	if err != nil {
		return err
	}
	if !exists {
		o.splog.Warn("%s does not exist on %s, nothing to propagate.", readme, run.MainBranch)
		return nil
	}

	parent, err := o.mkdirTemp()
	if err != nil {
		return fmt.Errorf("failed to create worktree directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(parent) }()

	worktreePath := filepath.Join(parent, "worktree")
	if err := o.git.AddWorktree(ctx, worktreePath, run.FeatureBranch, false); err != nil {
		return smerrors.NewCheckoutError(run.FeatureBranch, err)
	}
	defer func() {
		if err := o.git.RemoveWorktree(context.WithoutCancel(ctx), worktreePath); err != nil {
			o.splog.Warn("Could not remove worktree %s: %v", worktreePath, err)
		}
	}()

	feature := o.git.WithDir(worktreePath)
	if err := feature.CheckoutPathFromRef(ctx, run.MainBranch, readme); err != nil {
		return err
	}

	changed, err := feature.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !changed {
		o.splog.Info("%s on %s already matches %s.", readme, run.FeatureBranch, run.MainBranch)
		return nil
	}

	if err := feature.Commit(ctx, git.CommitOptions{Message: run.ReadmeCommitMessage()}); err != nil {
		return err
	}
	run.ReadmeCommitted = true
	o.splog.Info("Committed %s to %s.", readme, tui.ColorGreen(run.FeatureBranch))
	return nil
}
