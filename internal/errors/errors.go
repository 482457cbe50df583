// Package errors provides sentinel errors and custom error types for squashmerge.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrMissingFeatureBranch indicates that no feature branch was given
	ErrMissingFeatureBranch = errors.New("feature branch is required")

	// ErrCheckoutFailed indicates that a branch could not be checked out
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrUnresolvedConflicts indicates that conflicts remain after applying the resolution policy
	ErrUnresolvedConflicts = errors.New("unresolved conflicts")

	// ErrOperationInProgress indicates that an interrupted run must be continued or aborted first
	ErrOperationInProgress = errors.New("a squash merge is already in progress")

	// ErrNoContinuation indicates that there is no interrupted run to continue
	ErrNoContinuation = errors.New("no squash merge in progress")

	// ErrSyncFailed indicates that main could not be fast-forwarded from its remote
	ErrSyncFailed = errors.New("sync failed")
)

// CheckoutError represents an error when a branch cannot be checked out
type CheckoutError struct {
	BranchName string
	Err        error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("failed to checkout branch %s: %v", e.BranchName, e.Err)
}

// Is returns true if the target error is ErrCheckoutFailed
func (e *CheckoutError) Is(target error) bool {
	return target == ErrCheckoutFailed
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// NewCheckoutError creates a new CheckoutError
func NewCheckoutError(branchName string, err error) *CheckoutError {
	return &CheckoutError{BranchName: branchName, Err: err}
}

// UnresolvedConflictsError lists the paths the resolution policy left conflicted
type UnresolvedConflictsError struct {
	Paths []string
}

func (e *UnresolvedConflictsError) Error() string {
	return fmt.Sprintf("%d unresolved conflict(s): %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

// Is returns true if the target error is ErrUnresolvedConflicts
func (e *UnresolvedConflictsError) Is(target error) bool {
	return target == ErrUnresolvedConflicts
}

// NewUnresolvedConflictsError creates a new UnresolvedConflictsError
func NewUnresolvedConflictsError(paths []string) *UnresolvedConflictsError {
	return &UnresolvedConflictsError{Paths: paths}
}

// RepoState is a snapshot of the repository taken when a step fails
type RepoState struct {
	CurrentBranch string
	StagedFiles   []string
	UnmergedFiles []string
}

// StepError tags a failure with the workflow step that produced it and the
// state the repository was left in.
type StepError struct {
	Step  string
	Err   error
	State *RepoState
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a new StepError
func NewStepError(step string, err error, state *RepoState) *StepError {
	return &StepError{Step: step, Err: err, State: state}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
