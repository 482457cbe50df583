package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	smerrors "squashmerge.dev/squashmerge/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunLines executes a git command and returns its output split into lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// WorkingDir returns the directory commands run in. Empty means the process cwd.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// WithDir returns a runner that executes commands in dir
func (r *CommandRunner) WithDir(dir string) Runner {
	return &CommandRunner{workingDir: dir}
}

// runInternal is the internal implementation that handles directory and trimming
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", smerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", smerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// Runner defines the git operations used by the squash merge workflow.
// This allows the workflow to be driven by both real git and test doubles.
type Runner interface {
	// Runner state
	WorkingDir() string
	WithDir(dir string) Runner

	// Branches
	CurrentBranch(ctx context.Context) (string, error)
	CheckoutBranch(ctx context.Context, branchName string) error

	// Remote sync
	RemoteFor(ctx context.Context, branchName string) (string, bool, error)
	PullBranch(ctx context.Context, remote, branchName string) (PullResult, error)

	// Merging and conflicts
	SquashMerge(ctx context.Context, branchName string) (MergeResult, error)
	GetUnmergedFiles(ctx context.Context) ([]string, error)
	CheckoutConflictSide(ctx context.Context, side ConflictSide, path string) error
	ResetMerge(ctx context.Context) error

	// Paths and refs
	PathExistsAtRef(ctx context.Context, ref, path string) (bool, error)
	PathExistsInWorkingTree(ctx context.Context, path string) (bool, error)
	CheckoutPathFromRef(ctx context.Context, ref, path string) error

	// Index and commits
	StagePaths(ctx context.Context, paths ...string) error
	StageAll(ctx context.Context) error
	GetStagedFiles(ctx context.Context) ([]string, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	Commit(ctx context.Context, opts CommitOptions) error

	// Worktrees
	AddWorktree(ctx context.Context, path string, branch string, detach bool) error
	RemoveWorktree(ctx context.Context, path string) error
}

var _ Runner = (*CommandRunner)(nil)
