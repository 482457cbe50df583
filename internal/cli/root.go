// Package cli wires the squashmerge command line to the actions package.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"squashmerge.dev/squashmerge/internal/actions"
	"squashmerge.dev/squashmerge/internal/cli/common"
	smerrors "squashmerge.dev/squashmerge/internal/errors"
	"squashmerge.dev/squashmerge/internal/runtime"
	"squashmerge.dev/squashmerge/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		updateReadme bool
		mainBranch   string
		strategies   []string
		strictSync   bool
		dryRun       bool
		doContinue   bool
		doAbort      bool
		force        bool
		noColor      bool
	)

	cmd := &cobra.Command{
		Use:   "squashmerge <feature-branch> [--update-readme]",
		Short: "Squash merge a feature branch into main, keeping main's README",
		Long: `Squash merges a feature branch into the main branch and stages the result.

README.md always keeps main's version. Other conflicts are resolved with the
configured per-path strategy or left for you to resolve; the run then stops
and can be resumed with --continue. The final commit is left to you: the
command to run is printed at the end.

With --update-readme, main's README is also committed to the feature branch.`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		ValidArgsFunction: common.CompleteBranches,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			tui.ConfigureColor(noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if doContinue && doAbort {
				return fmt.Errorf("--continue and --abort cannot be used together")
			}

			if !doContinue && !doAbort && len(args) == 0 {
				_ = cmd.Usage()
				return smerrors.ErrMissingFeatureBranch
			}

			return common.Run(cmd, func(ctx *runtime.Context) error {
				switch {
				case doAbort:
					return actions.AbortAction(ctx, actions.AbortOptions{Force: force, DryRun: dryRun})
				case doContinue:
					return actions.ContinueAction(ctx, actions.ContinueOptions{DryRun: dryRun})
				default:
					return actions.SquashMergeAction(ctx, actions.SquashMergeOptions{
						Args:         args,
						UpdateReadme: updateReadme,
						MainBranch:   mainBranch,
						Strategies:   strategies,
						StrictSync:   strictSync,
						DryRun:       dryRun,
					})
				}
			})
		},
	}

	cmd.Flags().BoolVar(&updateReadme, "update-readme", false, "Also commit main's README to the feature branch.")
	cmd.Flags().StringVar(&mainBranch, "main", "", "The branch to merge into (default from .squashmerge.toml, else main).")
	cmd.Flags().StringArrayVar(&strategies, "strategy", nil, "Conflict rule as pattern=strategy, where strategy is ours, theirs or manual. Repeatable.")
	cmd.Flags().BoolVar(&strictSync, "strict-sync", false, "Stop when main cannot be fast-forwarded from its remote.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the steps and git commands without running them.")
	cmd.Flags().BoolVar(&doContinue, "continue", false, "Continue a squash merge stopped by a failed step.")
	cmd.Flags().BoolVar(&doAbort, "abort", false, "Discard a squash merge stopped by a failed step.")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not prompt for confirmation when aborting.")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	cmd.SetOut(cmd.OutOrStdout())

	return cmd
}
