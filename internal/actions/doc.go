// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to one mode of the squashmerge command (run,
// continue, abort) and orchestrates operations across the workflow, git and
// config packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Git, Splog, and Config
//   - Actions are stateless; interrupted runs are recorded through config.ContinuationState
//   - Actions handle user interaction through the tui package
//
// Dependencies:
//   - workflow: the squash merge step sequence
//   - git: low-level git operations
//   - tui: user interface and prompts
package actions
