package server

import (
	"fmt"
	"os"
	"path/filepath"
)

// LogFileName is the file OpenLogFile appends to inside DataDir.
const LogFileName = "lightcast.log"

// DataDir returns the directory lightcast keeps its files in:
// $XDG_DATA_HOME/lightcast, defaulting to ~/.local/share/lightcast.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lightcast"), nil
}

// OpenLogFile opens the append-only log used while a local terminal owns
// stderr. The caller closes it.
func OpenLogFile() (*os.File, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
