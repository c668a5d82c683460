// Package vpn provides the two system interactions of VPN Launcher.
//
//   - Privilege probe: IsPrivileged asks the identity command for the
//     effective user id and reports whether it is the superuser.
//   - Client launch: Launcher runs the VPN client against one definition
//     file, attached to the current terminal, and waits for it to exit.
//
// # OpenVPN Integration
//
// The client is located through PATH by name (openvpn by default) and
// receives the definition file as its only argument. Tunnel setup, routes,
// and credentials are entirely the client's responsibility.
//
// # Failure Model
//
// The privilege probe never fails: any error is reported as "not
// privileged". A client that cannot be started yields an error wrapping
// common.ErrLaunchFailed, while a client that ran and exited non-zero
// yields an *ExitStatus.
package vpn
