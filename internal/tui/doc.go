// Package tui provides the terminal output layer for squashmerge.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss and termenv)
//   - The y/N confirmation prompt (using bubbletea)
package tui
