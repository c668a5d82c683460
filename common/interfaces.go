// Package common provides shared constants, types, and utilities
// used across the VPN Launcher application.
package common

// CommandRunner runs a short-lived helper command and returns its stdout.
// The privilege probe uses it so tests can stand in for the real binary.
type CommandRunner interface {
	Output(name string, args ...string) ([]byte, error)
}

// VPNLauncher starts a VPN client for one definition file and waits for it.
type VPNLauncher interface {
	// Launch runs the client with configPath as its argument.
	Launch(configPath string) error
	// Name is the client name used in user-facing messages.
	Name() string
}
