package runtime

import (
	"context"
	"fmt"

	"squashmerge.dev/squashmerge/internal/config"
	"squashmerge.dev/squashmerge/internal/git"
	"squashmerge.dev/squashmerge/internal/tui"
)

// Context provides access to git, config and output for commands
type Context struct {
	Git      git.Runner
	Splog    *tui.Splog
	RepoRoot string
	Config   *config.RepoConfig
	Context  context.Context
}

// NewContext creates a new context with the given runner
func NewContext(runner git.Runner, splog *tui.Splog) *Context {
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Git:     runner,
		Splog:   splog,
		Config:  &config.RepoConfig{},
		Context: context.Background(),
	}
}

// NewContextWithRepoRoot creates a context rooted at repoRoot and loads its config
func NewContextWithRepoRoot(repoRoot string, splog *tui.Splog) (*Context, error) {
	cfg, err := config.GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(git.NewCommandRunner(repoRoot), splog)
	ctx.RepoRoot = repoRoot
	ctx.Config = cfg
	return ctx, nil
}

// GetContext finds the repository containing the working directory and
// returns a context for it.
func GetContext(splog *tui.Splog) (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return NewContextWithRepoRoot(repoRoot, splog)
}
