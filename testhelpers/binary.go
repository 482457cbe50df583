package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// binaryPath is set by TestMain before any test runs
var binaryPath string

// TestMain builds cmd/squashmerge into a temp directory, runs the package's
// tests against it and removes it afterwards. Packages that drive the binary
// call it from their own TestMain.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "squashmerge-test-binary-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create binary directory: %v\n", err)
		os.Exit(1)
	}

	path, err := buildBinary(dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		fmt.Fprintf(os.Stderr, "Failed to build squashmerge binary: %v\n", err)
		os.Exit(1)
	}
	binaryPath = path

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// BinaryPath returns the squashmerge binary built by TestMain
func BinaryPath(t *testing.T) string {
	t.Helper()
	if binaryPath == "" {
		t.Fatal("squashmerge binary not built: call testhelpers.TestMain from the package's TestMain")
	}
	return binaryPath
}

func buildBinary(dir string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find go.mod above %s", wd)
	}

	path := filepath.Join(dir, "squashmerge")
	cmd := exec.Command("go", "build", "-o", path, "./cmd/squashmerge")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build failed: %s: %w", output, err)
	}
	return path, nil
}

func findModuleRoot(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
