// Package workflow implements the squash merge sequence as an explicit list
// of named steps:
//
//	validate -> checkout-main -> sync -> squash-merge -> classify-conflicts
//	-> resolve -> stage -> propagate-readme -> report
//
// Each step returns an error that the Orchestrator tags with the step name
// and a snapshot of the repository. A run can start at any step, which is
// how interrupted runs are continued, and can be planned without executing
// anything for --dry-run.
package workflow
