// Package common provides shared constants, types, and utilities
// used across the VPN Launcher application.
package common

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "VPN Launcher"
	// ConfigDirName is the name of the per-user directory holding logs.
	ConfigDirName = "vpn-launcher"
)

// File names used by the application.
const (
	// ConfigFileName is the configuration written next to the executable.
	ConfigFileName = "config.json"
	// YAMLConfigFileName and YMLConfigFileName take precedence over
	// ConfigFileName when present.
	YAMLConfigFileName = "config.yaml"
	YMLConfigFileName  = "config.yml"
	LogFileName        = "vpn-launcher.log"
)

// External collaborators, resolved through PATH.
const (
	// DefaultClientBinary is the VPN client launched for the selected entry.
	DefaultClientBinary = "openvpn"
	// IdentityCommand reports the effective user id on stdout.
	IdentityCommand = "id"
	// SuperuserID is the identity reported for root.
	SuperuserID = "0"
)

// Logging defaults.
const (
	DefaultLogMaxFileSize = 5 * 1024 * 1024 // 5MB
	DefaultLogMaxBackups  = 5
)
