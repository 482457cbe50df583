package workflow

import (
	"fmt"
	"strings"

	"squashmerge.dev/squashmerge/internal/conflict"
	smerrors "squashmerge.dev/squashmerge/internal/errors"
)

const (
	// UpdateReadmeToken is the literal argument that enables README propagation
	UpdateReadmeToken = "--update-readme"
	// DefaultReadmePath is used when no README path is configured
	DefaultReadmePath = "README.md"
)

// Invocation holds everything a run needs to know about what to merge
type Invocation struct {
	MainBranch    string
	FeatureBranch string
	UpdateReadme  bool
	StrictSync    bool
	ReadmePath    string
	Policy        conflict.Policy
	// Strategies are the raw --strategy rules, kept so a continued run uses the same policy
	Strategies []string
}

// ParseInvocation reads the feature branch from args[0]. UpdateReadme is set
// by the flag, or when args[1] is exactly UpdateReadmeToken; any other second
// argument is ignored.
func ParseInvocation(args []string, updateReadmeFlag bool) (Invocation, error) {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return Invocation{}, smerrors.ErrMissingFeatureBranch
	}

	inv := Invocation{
		FeatureBranch: strings.TrimSpace(args[0]),
		UpdateReadme:  updateReadmeFlag,
	}
	if len(args) > 1 && args[1] == UpdateReadmeToken {
		inv.UpdateReadme = true
	}
	return inv, nil
}

// Validate checks the invariants that must hold before any git operation runs
func (inv Invocation) Validate() error {
	if inv.FeatureBranch == "" {
		return smerrors.ErrMissingFeatureBranch
	}
	if inv.MainBranch == "" {
		return fmt.Errorf("main branch is not set")
	}
	if inv.FeatureBranch == inv.MainBranch {
		return fmt.Errorf("cannot squash merge %s into itself", inv.MainBranch)
	}
	return nil
}

// SuggestedCommitCommand is the command the operator runs to finish the merge
func (inv Invocation) SuggestedCommitCommand() string {
	return fmt.Sprintf(`git commit -m "Squash merge '%s' into %s"`, inv.FeatureBranch, inv.MainBranch)
}

// Readme returns the README path, defaulting to README.md
func (inv Invocation) Readme() string {
	if inv.ReadmePath == "" {
		return DefaultReadmePath
	}
	return inv.ReadmePath
}

// ReadmeCommitMessage is the message of the README commit on the feature branch
func (inv Invocation) ReadmeCommitMessage() string {
	return fmt.Sprintf("Update %s from %s", inv.Readme(), inv.MainBranch)
}
