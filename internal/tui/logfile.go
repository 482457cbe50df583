package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If SQUASHMERGE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.squashmerge/logs/squashmerge.log
func GetLogFilePath() string {
	if customPath := os.Getenv("SQUASHMERGE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "squashmerge.log"
	}

	return filepath.Join(homeDir, ".squashmerge", "logs", "squashmerge.log")
}
