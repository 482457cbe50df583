// Package runtime provides the execution context for squashmerge commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the git runner, logger, repository config and root path.
package runtime
