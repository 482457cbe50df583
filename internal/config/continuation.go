package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	smerrors "squashmerge.dev/squashmerge/internal/errors"
)

const continuationFileName = "squashmerge_state.toml"

// ContinuationState represents a run that stopped partway through
type ContinuationState struct {
	MainBranch    string   `toml:"main_branch"`
	FeatureBranch string   `toml:"feature_branch"`
	StartBranch   string   `toml:"start_branch,omitempty"`
	UpdateReadme  bool     `toml:"update_readme"`
	StrictSync    bool     `toml:"strict_sync"`
	Strategies    []string `toml:"strategies,omitempty"`
	FailedStep    string   `toml:"failed_step"`
	ResumeFrom    string   `toml:"resume_from"`
	Completed     []string `toml:"completed,omitempty"`
}

func continuationPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", continuationFileName)
}

// GetContinuationState reads the continuation state from disk
func GetContinuationState(repoRoot string) (*ContinuationState, error) {
	data, err := os.ReadFile(continuationPath(repoRoot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, smerrors.ErrNoContinuation
		}
		return nil, fmt.Errorf("failed to read continuation state: %w", err)
	}

	var state ContinuationState
	if err := toml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse continuation state: %w", err)
	}
	return &state, nil
}

// HasContinuationState reports whether an interrupted run is recorded
func HasContinuationState(repoRoot string) bool {
	_, err := os.Stat(continuationPath(repoRoot))
	return err == nil
}

// PersistContinuationState writes the continuation state to disk
func PersistContinuationState(repoRoot string, state *ContinuationState) error {
	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal continuation state: %w", err)
	}
	return os.WriteFile(continuationPath(repoRoot), data, 0600)
}

// ClearContinuationState removes the continuation state file
func ClearContinuationState(repoRoot string) error {
	err := os.Remove(continuationPath(repoRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear continuation state: %w", err)
	}
	return nil
}
