package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It changes the process working directory into the repository and
// automatically restores it using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "squashmerge-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// macOS symlinks /var to /private/var and git reports the resolved path
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := os.Chdir(tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(tmpDir)
			_ = os.RemoveAll(tmpDir + "-origin.git")
		}
	})

	scene.writeTestEnvironment(t)

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// writeTestEnvironment keeps log files inside the scene and disables prompts.
func (s *Scene) writeTestEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("SQUASHMERGE_LOG_FILE", filepath.Join(s.Dir, ".git", "squashmerge.log"))
	t.Setenv("SQUASHMERGE_TEST_NO_INTERACTIVE", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("NO_COLOR", "1")
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// ReadmeSceneSetup builds the canonical squash merge fixture: main has
// README.md = "A", feature-x branched from it and has README.md = "B" plus
// an unrelated x.txt.
func ReadmeSceneSetup(scene *Scene) error {
	repo := scene.Repo
	if err := repo.CommitFile("README.md", "A", "add readme"); err != nil {
		return err
	}
	if err := repo.CreateAndCheckoutBranch("feature-x"); err != nil {
		return err
	}
	if err := repo.CommitFile("README.md", "B", "feature readme"); err != nil {
		return err
	}
	if err := repo.CommitFile("x.txt", "x", "add x"); err != nil {
		return err
	}
	return repo.CheckoutBranch("main")
}
