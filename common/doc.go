// Package common provides shared constants, types, utilities, and interfaces
// used throughout the VPN Launcher application.
//
// This package holds the cross-cutting pieces:
//
//   - Constants: file names, the default VPN client, and the identity command
//   - Errors: sentinel errors checked with errors.Is across packages
//   - Interfaces: the command runner and launcher abstractions
//   - Logger: levelled logging with an optional rotating log file
//   - Utils: executable location and file helpers
//
// # Usage
//
//	common.LogInfo("Launching %s", entryName)
//
//	if errors.Is(err, common.ErrInvalidConfig) {
//	    // Config file is malformed
//	}
package common
