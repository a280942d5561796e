// Package logging opens the diagnostic log file. The TUI owns the
// terminal, so everything that would normally go to stderr lands here.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Open returns a logger writing to path, creating parent directories
// as needed. The returned closer flushes and closes the file.
func Open(path string) (*log.Logger, func() error, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open log file: %w", err)
	}
	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
	})
	return logger, file.Close, nil
}
