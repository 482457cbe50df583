package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

const (
	// ConfigFileName is the repository config file, relative to the repository root
	ConfigFileName = ".squashmerge.toml"
	// DefaultMainBranch is used when no main branch is configured
	DefaultMainBranch = "main"
	// DefaultReadmePath is the file that always keeps main's version
	DefaultReadmePath = "README.md"
	// DefaultStrategy applies to conflicts no rule matches
	DefaultStrategy = "manual"
)

// Rule assigns a conflict strategy to paths matching Pattern
type Rule struct {
	Pattern  string `toml:"pattern"`
	Strategy string `toml:"strategy"`
}

// RepoConfig represents the repository configuration
type RepoConfig struct {
	MainBranch      *string  `toml:"main_branch,omitempty"`
	ReadmePath      *string  `toml:"readme_path,omitempty"`
	Pinned          []string `toml:"pinned,omitempty"`
	DefaultStrategy *string  `toml:"default_strategy,omitempty"`
	StrictSync      *bool    `toml:"strict_sync,omitempty"`
	Rules           []Rule   `toml:"rule,omitempty"`
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config doesn't exist - return default
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	return &config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(repoRoot string, config *RepoConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(repoRoot, ConfigFileName), data, 0600)
}

// GetMainBranch returns the configured main branch, or "main" as default
func (c *RepoConfig) GetMainBranch() string {
	if c.MainBranch != nil && *c.MainBranch != "" {
		return *c.MainBranch
	}
	return DefaultMainBranch
}

// GetReadmePath returns the README path, or "README.md" as default
func (c *RepoConfig) GetReadmePath() string {
	if c.ReadmePath != nil && *c.ReadmePath != "" {
		return *c.ReadmePath
	}
	return DefaultReadmePath
}

// GetPinned returns every path that always keeps main's version.
// The README path is always first.
func (c *RepoConfig) GetPinned() []string {
	pinned := append([]string{c.GetReadmePath()}, c.Pinned...)
	return lo.Uniq(lo.Compact(pinned))
}

// GetDefaultStrategy returns the strategy for conflicts no rule matches
func (c *RepoConfig) GetDefaultStrategy() string {
	if c.DefaultStrategy != nil && *c.DefaultStrategy != "" {
		return *c.DefaultStrategy
	}
	return DefaultStrategy
}

// IsStrictSync reports whether a failed sync of main stops the run
func (c *RepoConfig) IsStrictSync() bool {
	return c.StrictSync != nil && *c.StrictSync
}
