package vpn

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yllada/vpn-launcher/common"
)

// ExitStatus is returned by Launch when the client ran but did not exit
// cleanly.
type ExitStatus struct {
	// Code is the process exit code, or -1 when it was killed by a signal.
	Code int
	text string
}

// Error returns the status as reported by the operating system,
// e.g. "exit status 1" or "signal: killed".
func (e *ExitStatus) Error() string {
	if e.text != "" {
		return e.text
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Launcher runs a VPN client attached to the given streams.
type Launcher struct {
	// Binary is the client executable, looked up through PATH.
	Binary string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher creates a Launcher for binary that inherits the process's
// standard streams. An empty binary selects the default client.
func NewLauncher(binary string) *Launcher {
	if binary == "" {
		binary = common.DefaultClientBinary
	}
	return &Launcher{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Launch runs the client with configPath as its only argument and blocks
// until it exits. A client that cannot be started yields an error wrapping
// common.ErrLaunchFailed; a non-zero exit yields an *ExitStatus.
func (l *Launcher) Launch(configPath string) error {
	session := uuid.NewString()

	if resolved, err := exec.LookPath(l.Binary); err == nil {
		common.LogDebug("VPN[%s]: Client resolved to %s", session, resolved)
	} else {
		common.LogWarn("VPN[%s]: Client %s not found in PATH", session, l.Binary)
	}

	cmd := exec.Command(l.Binary, configPath)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	common.LogInfo("VPN[%s]: Command: %s", session, formatCommand(l.Binary, []string{configPath}))

	if err := cmd.Start(); err != nil {
		common.LogError("VPN[%s]: Could not start %s: %v", session, l.Binary, err)
		return fmt.Errorf("%w %s: %v", common.ErrLaunchFailed, l.Binary, err)
	}
	common.LogInfo("VPN[%s]: Process started with PID %d", session, cmd.Process.Pid)

	started := time.Now()
	err := cmd.Wait()
	elapsed := time.Since(started).Round(time.Millisecond)

	if err == nil {
		common.LogInfo("VPN[%s]: Process exited after %s", session, elapsed)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := &ExitStatus{Code: exitErr.ExitCode(), text: exitErr.ProcessState.String()}
		common.LogWarn("VPN[%s]: Process exited after %s with %s", session, elapsed, status)
		return status
	}

	common.LogError("VPN[%s]: Waiting for process failed: %v", session, err)
	return fmt.Errorf("%w %s: %v", common.ErrLaunchFailed, l.Binary, err)
}

// formatCommand renders a command line for logs, quoting arguments that
// contain whitespace or quotes.
func formatCommand(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(binary))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, " \t\"") {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// Name returns the client's base name for user-facing messages.
func (l *Launcher) Name() string {
	return filepath.Base(l.Binary)
}
