// Package common provides shared constants, types, and utilities
// used across the VPN Launcher application.
package common

import (
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory containing the running executable.
// Symlinks are resolved so an entry in /usr/local/bin pointing at the real
// binary still finds the config file next to the binary itself.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", WrapError(err, "failed to get executable path")
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
