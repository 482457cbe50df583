package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"squashmerge.dev/squashmerge/testhelpers"
)

// =============================================================================
// Test Shell - A helper to make integration tests read like terminal sessions
// =============================================================================

// TestShell wraps a test scene and provides a fluent interface for running
// commands. Tests using this read like a series of terminal commands.
type TestShell struct {
	t          *testing.T
	scene      *testhelpers.Scene
	binaryPath string
	remoteDir  string
	lastOutput string
}

// NewTestShell creates a shell-like test environment holding the README
// fixture: main with README.md "A", feature-x with README.md "B" and x.txt.
func NewTestShell(t *testing.T, binaryPath string) *TestShell {
	t.Helper()
	scene := testhelpers.NewScene(t, testhelpers.ReadmeSceneSetup)
	return &TestShell{t: t, scene: scene, binaryPath: binaryPath}
}

// NewTestShellWithRemote is NewTestShell plus a local bare repo as "origin"
// that main tracks.
func NewTestShellWithRemote(t *testing.T, binaryPath string) *TestShell {
	t.Helper()

	remoteDir := t.TempDir()
	cmd := exec.Command("git", "init", "--bare", "-b", "main", remoteDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to create bare repo: %s", string(output))

	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.ReadmeSceneSetup(s); err != nil {
			return err
		}
		if err := s.Repo.RunGitCommand("remote", "add", "origin", remoteDir); err != nil {
			return err
		}
		return s.Repo.PushBranch("origin", "main")
	})
	return &TestShell{t: t, scene: scene, binaryPath: binaryPath, remoteDir: remoteDir}
}

// Scene returns the underlying test scene for direct access when needed.
func (s *TestShell) Scene() *testhelpers.Scene {
	return s.scene
}

// =============================================================================
// Command Execution
// =============================================================================

// Run executes a squashmerge CLI command (e.g., "feature-x --update-readme")
func (s *TestShell) Run(args string) *TestShell {
	s.t.Helper()
	cmd := exec.Command(s.binaryPath, splitArgs(args)...)
	cmd.Dir = s.scene.Dir
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	require.NoError(s.t, err, "$ squashmerge %s\n%s", args, s.lastOutput)
	return s
}

// RunExpectError executes a squashmerge CLI command and expects it to fail.
func (s *TestShell) RunExpectError(args string) *TestShell {
	s.t.Helper()
	cmd := exec.Command(s.binaryPath, splitArgs(args)...)
	cmd.Dir = s.scene.Dir
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	require.Error(s.t, err, "$ squashmerge %s (expected error)\n%s", args, s.lastOutput)
	return s
}

// Git executes a raw git command
func (s *TestShell) Git(args string) *TestShell {
	s.t.Helper()
	cmd := exec.Command("git", splitArgs(args)...)
	cmd.Dir = s.scene.Dir
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	require.NoError(s.t, err, "$ git %s\n%s", args, s.lastOutput)
	return s
}

// Checkout switches to a branch using git
func (s *TestShell) Checkout(branch string) *TestShell {
	s.t.Helper()
	return s.Git("checkout " + branch)
}

// =============================================================================
// File Operations
// =============================================================================

// WriteFile writes a file and stages it
func (s *TestShell) WriteFile(filename, content string) *TestShell {
	s.t.Helper()
	err := os.WriteFile(filepath.Join(s.scene.Dir, filename), []byte(content), 0644)
	require.NoError(s.t, err, "failed to write file %s", filename)
	return s.Git("add " + filename)
}

// Commit writes a file and commits it on the current branch
func (s *TestShell) Commit(filename, content, message string) *TestShell {
	s.t.Helper()
	err := s.scene.Repo.CommitFile(filename, content, message)
	require.NoError(s.t, err, "failed to commit %s", filename)
	return s
}

// PushFromElsewhere commits a file to the remote's main from a separate
// clone, so the local main falls behind.
func (s *TestShell) PushFromElsewhere(filename, content string) *TestShell {
	s.t.Helper()
	require.NotEmpty(s.t, s.remoteDir, "shell has no remote")

	clone := filepath.Join(s.t.TempDir(), "clone")
	steps := [][]string{
		{"clone", s.remoteDir, clone},
		{"-C", clone, "config", "user.name", "Someone Else"},
		{"-C", clone, "config", "user.email", "someone@example.com"},
	}
	for _, args := range steps {
		output, err := exec.Command("git", args...).CombinedOutput()
		require.NoError(s.t, err, "$ git %s\n%s", strings.Join(args, " "), string(output))
	}

	require.NoError(s.t, os.WriteFile(filepath.Join(clone, filename), []byte(content), 0644))
	for _, args := range [][]string{
		{"-C", clone, "add", filename},
		{"-C", clone, "-c", "commit.gpgsign=false", "commit", "-m", "add " + filename},
		{"-C", clone, "push", "origin", "main"},
	} {
		output, err := exec.Command("git", args...).CombinedOutput()
		require.NoError(s.t, err, "$ git %s\n%s", strings.Join(args, " "), string(output))
	}
	return s
}

// =============================================================================
// Output Inspection
// =============================================================================

// Output returns the last command's output
func (s *TestShell) Output() string {
	return s.lastOutput
}

// OutputContains asserts the last output contains the given string
func (s *TestShell) OutputContains(substr string) *TestShell {
	s.t.Helper()
	require.Contains(s.t, s.lastOutput, substr)
	return s
}

// OutputNotContains asserts the last output does NOT contain the given string
func (s *TestShell) OutputNotContains(substr string) *TestShell {
	s.t.Helper()
	require.NotContains(s.t, s.lastOutput, substr)
	return s
}

// =============================================================================
// Assertions
// =============================================================================

// OnBranch asserts we're on the expected branch
func (s *TestShell) OnBranch(expected string) *TestShell {
	s.t.Helper()
	testhelpers.ExpectCurrentBranch(s.t, s.scene.Repo, expected)
	return s
}

// Staged asserts exactly these paths are staged
func (s *TestShell) Staged(paths ...string) *TestShell {
	s.t.Helper()
	testhelpers.ExpectStaged(s.t, s.scene.Repo, paths...)
	return s
}

// IndexHas asserts the staged content of a path
func (s *TestShell) IndexHas(path, content string) *TestShell {
	s.t.Helper()
	testhelpers.ExpectIndexContent(s.t, s.scene.Repo, path, content)
	return s
}

// FileAt asserts the content of a path at a ref
func (s *TestShell) FileAt(ref, path, content string) *TestShell {
	s.t.Helper()
	actual, err := s.scene.Repo.ShowFileAtRef(ref, path)
	require.NoError(s.t, err)
	require.Equal(s.t, content, actual, "%s at %s", path, ref)
	return s
}

// CommitCount asserts the number of commits between two refs
func (s *TestShell) CommitCount(from, to string, expected int) *TestShell {
	s.t.Helper()
	actual, err := s.scene.Repo.GetCommitCount(from, to)
	require.NoError(s.t, err)
	require.Equal(s.t, expected, actual, "expected %d commits between %s..%s, got %d", expected, from, to, actual)
	return s
}

// Rev returns the commit a ref points at
func (s *TestShell) Rev(ref string) string {
	s.t.Helper()
	rev, err := s.scene.Repo.GetRevision(ref)
	require.NoError(s.t, err)
	return rev
}

// Log prints a message (useful for documenting test steps)
func (s *TestShell) Log(msg string) *TestShell {
	s.t.Log(msg)
	return s
}

// =============================================================================
// Utility Functions
// =============================================================================

// splitArgs splits a command string into args, respecting quotes
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, r := range s {
		switch {
		case r == '"' || r == '\'':
			switch {
			case inQuote && r == quoteChar:
				inQuote = false
			case !inQuote:
				inQuote = true
				quoteChar = r
			default:
				current.WriteRune(r)
			}
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
