// Package config manages squashmerge configuration and state persistence.
//
// It handles:
//   - Repository configuration (.squashmerge.toml at the repository root)
//   - Continuation state for interrupted runs (like unresolved conflicts)
package config
