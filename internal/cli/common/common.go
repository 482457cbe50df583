// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"squashmerge.dev/squashmerge/internal/git"
	"squashmerge.dev/squashmerge/internal/runtime"
	"squashmerge.dev/squashmerge/internal/tui"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), tui.GetLogFilePath())
	if err != nil {
		// Fall back to console-only logging
		splog = tui.NewSplog()
	}
	defer func() { _ = splog.Close() }()

	ctx, err := runtime.GetContext(splog)
	if err != nil {
		return err
	}
	ctx.Context = cmd.Context()
	return fn(ctx)
}

// CompleteBranches is a helper for cobra.ValidArgsFunction
// that returns all branch names in the repository.
func CompleteBranches(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := git.NewCommandRunner(repoRoot).ListBranches(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
