// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch checkout and current branch queries
//   - Squash merging and conflict side selection
//   - Index operations (stage, restore paths from a ref, commit)
//   - Remote sync (fetch and fast-forward)
//   - Linked worktrees
//
// Reads of refs and trees go through go-git; everything that mutates the
// repository shells out to git. This package should be the only place where
// direct git commands are executed.
package git
