package workflow

import (
	"context"
	"fmt"
	"strings"

	"squashmerge.dev/squashmerge/internal/git"
)

// fakeRunner records every git operation and returns canned results.
type fakeRunner struct {
	dir   string
	calls *[]string

	branch    string
	remote    string
	hasRemote bool

	checkoutErr map[string]error
	pullResult  git.PullResult
	pullErr     error
	mergeResult git.MergeResult
	mergeErr    error
	unmerged    []string
	staged      []string
	atMain      map[string]bool
	inWorktree  map[string]bool
	sideErr     map[string]error
	worktreeErr error
	stagedInWT  bool
	commitErr   error
}

var _ git.Runner = (*fakeRunner)(nil)

func newFakeRunner() *fakeRunner {
	calls := []string{}
	return &fakeRunner{
		calls:       &calls,
		branch:      "feature-x",
		checkoutErr: map[string]error{},
		atMain:      map[string]bool{"README.md": true},
		inWorktree:  map[string]bool{"README.md": true},
		sideErr:     map[string]error{},
		stagedInWT:  true,
	}
}

func (f *fakeRunner) record(format string, args ...interface{}) {
	call := fmt.Sprintf(format, args...)
	if f.dir != "" {
		call = "[" + f.dir + "] " + call
	}
	*f.calls = append(*f.calls, call)
}

func (f *fakeRunner) Calls() []string {
	return *f.calls
}

func (f *fakeRunner) WorkingDir() string { return f.dir }

func (f *fakeRunner) WithDir(dir string) git.Runner {
	clone := *f
	clone.dir = dir
	return &clone
}

func (f *fakeRunner) CurrentBranch(context.Context) (string, error) {
	return f.branch, nil
}

func (f *fakeRunner) CheckoutBranch(_ context.Context, branchName string) error {
	f.record("checkout %s", branchName)
	if err := f.checkoutErr[branchName]; err != nil {
		return err
	}
	f.branch = branchName
	return nil
}

func (f *fakeRunner) RemoteFor(context.Context, string) (string, bool, error) {
	return f.remote, f.hasRemote, nil
}

func (f *fakeRunner) PullBranch(_ context.Context, remote, branchName string) (git.PullResult, error) {
	f.record("pull %s %s", remote, branchName)
	return f.pullResult, f.pullErr
}

func (f *fakeRunner) SquashMerge(_ context.Context, branchName string) (git.MergeResult, error) {
	f.record("merge --squash %s", branchName)
	return f.mergeResult, f.mergeErr
}

func (f *fakeRunner) GetUnmergedFiles(context.Context) ([]string, error) {
	return f.unmerged, nil
}

func (f *fakeRunner) CheckoutConflictSide(_ context.Context, side git.ConflictSide, path string) error {
	name := "ours"
	if side == git.SideTheirs {
		name = "theirs"
	}
	f.record("checkout --%s %s", name, path)
	return f.sideErr[path]
}

func (f *fakeRunner) ResetMerge(context.Context) error {
	f.record("reset --merge")
	return nil
}

func (f *fakeRunner) PathExistsAtRef(_ context.Context, _ string, path string) (bool, error) {
	return f.atMain[path], nil
}

func (f *fakeRunner) PathExistsInWorkingTree(_ context.Context, path string) (bool, error) {
	return f.inWorktree[path], nil
}

func (f *fakeRunner) CheckoutPathFromRef(_ context.Context, ref, path string) error {
	f.record("checkout %s -- %s", ref, path)
	return nil
}

func (f *fakeRunner) StagePaths(_ context.Context, paths ...string) error {
	f.record("add %s", strings.Join(paths, " "))
	return nil
}

func (f *fakeRunner) StageAll(context.Context) error {
	f.record("add -A")
	return nil
}

func (f *fakeRunner) GetStagedFiles(context.Context) ([]string, error) {
	return f.staged, nil
}

func (f *fakeRunner) HasStagedChanges(context.Context) (bool, error) {
	return f.stagedInWT, nil
}

func (f *fakeRunner) Commit(_ context.Context, opts git.CommitOptions) error {
	f.record("commit %s", opts.Message)
	return f.commitErr
}

func (f *fakeRunner) AddWorktree(_ context.Context, _ string, branch string, _ bool) error {
	f.record("worktree add %s", branch)
	return f.worktreeErr
}

func (f *fakeRunner) RemoveWorktree(context.Context, string) error {
	f.record("worktree remove")
	return nil
}
