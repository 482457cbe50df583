package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRepoConfig(t *testing.T) {
	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		dir := t.TempDir()

		config, err := GetRepoConfig(dir)
		require.NoError(t, err)
		require.Equal(t, "main", config.GetMainBranch())
		require.Equal(t, "README.md", config.GetReadmePath())
		require.Equal(t, []string{"README.md"}, config.GetPinned())
		require.Equal(t, "manual", config.GetDefaultStrategy())
		require.False(t, config.IsStrictSync())
	})

	t.Run("parses toml config", func(t *testing.T) {
		dir := t.TempDir()
		content := `main_branch = "trunk"
pinned = ["CHANGELOG.md", "README.md"]
default_strategy = "theirs"
strict_sync = true

[[rule]]
pattern = "*.lock"
strategy = "ours"

[[rule]]
pattern = "docs/*"
strategy = "theirs"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

		config, err := GetRepoConfig(dir)
		require.NoError(t, err)
		require.Equal(t, "trunk", config.GetMainBranch())
		require.Equal(t, []string{"README.md", "CHANGELOG.md"}, config.GetPinned())
		require.Equal(t, "theirs", config.GetDefaultStrategy())
		require.True(t, config.IsStrictSync())
		require.Equal(t, []Rule{
			{Pattern: "*.lock", Strategy: "ours"},
			{Pattern: "docs/*", Strategy: "theirs"},
		}, config.Rules)
	})

	t.Run("rejects malformed config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("main_branch = "), 0600))

		_, err := GetRepoConfig(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), ConfigFileName)
	})

	t.Run("save then load keeps custom readme path", func(t *testing.T) {
		dir := t.TempDir()
		readme := "docs/README.md"
		require.NoError(t, SaveRepoConfig(dir, &RepoConfig{ReadmePath: &readme}))

		config, err := GetRepoConfig(dir)
		require.NoError(t, err)
		require.Equal(t, "docs/README.md", config.GetReadmePath())
		require.Equal(t, []string{"docs/README.md"}, config.GetPinned())
	})
}
