package vpn

import (
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/yllada/vpn-launcher/common"
)

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Output runs name with args and returns its standard output.
func (ExecRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// IsPrivileged reports whether the process runs with superuser identity.
// It runs `id -u` through runner and compares the trimmed output to "0".
// Any failure along the way is treated as unprivileged.
func IsPrivileged(runner common.CommandRunner) bool {
	if runner == nil {
		runner = ExecRunner{}
	}

	out, err := runner.Output(common.IdentityCommand, "-u")
	// A failed run is unprivileged even when it printed "0".
	if err != nil {
		common.LogDebug("Identity check failed: %v", err)
		return false
	}

	if !utf8.Valid(out) {
		common.LogDebug("Identity check returned non-UTF-8 output")
		return false
	}

	uid := strings.TrimSpace(string(out))
	common.LogDebug("Effective user id: %q", uid)
	return uid == common.SuperuserID
}
