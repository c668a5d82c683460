// Package cli provides the interactive terminal flow of VPN Launcher:
// privilege gate, configuration bootstrap, selection menu, and client launch.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/config"
	"github.com/yllada/vpn-launcher/vpn"
)

// Messages shown to the user.
const (
	msgNeedSudo      = "This program requires sudo privileges. Please run it with 'sudo'."
	msgMenuHeading   = "Select a VPN file to run:"
	msgPrompt        = "Enter your choice (number): "
	msgInvalidChoice = "Invalid choice."
)

// CLI represents the command-line interface.
// A CLI runs once: every outcome of Run is terminal.
type CLI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// ConfigPath overrides the config file location. When empty the file
	// next to the running executable is used.
	ConfigPath string

	// LogDir, when set, receives the rotating log file once the privilege
	// check has passed.
	LogDir string

	// Runner executes the identity command for the privilege check.
	Runner common.CommandRunner

	launcher common.VPNLauncher
}

// New creates a CLI bound to the process's standard streams that launches
// entries with launcher.
func New(launcher common.VPNLauncher) *CLI {
	return &CLI{
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Runner:   vpn.ExecRunner{},
		launcher: launcher,
	}
}

// Run executes the whole flow. A nil error covers every user-facing outcome:
// missing privileges, an invalid choice, and a client that exited with a
// failure status. Errors are returned only for config problems and for a
// client that could not be started.
func (c *CLI) Run() error {
	if !vpn.IsPrivileged(c.Runner) {
		common.LogInfo("Not running as root, exiting")
		fmt.Fprintln(c.Out, msgNeedSudo)
		return nil
	}

	if c.LogDir != "" {
		if err := common.EnableFileLogging(c.LogDir); err != nil {
			fmt.Fprintf(c.Err, "Warning: Could not initialize file logging: %v\n", err)
		}
	}

	path, err := c.configPath()
	if err != nil {
		return err
	}

	if _, err := config.Bootstrap(path, c.Out); err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	c.PrintMenu(cfg)

	fmt.Fprint(c.Out, msgPrompt)
	line, err := readLine(c.In)
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	entry, err := Select(cfg, ParseChoice(line))
	if err != nil {
		common.LogInfo("Rejected choice %q", strings.TrimSpace(line))
		fmt.Fprintln(c.Out, c.style(c.Out).warn.Render(msgInvalidChoice))
		return nil
	}

	fmt.Fprintf(c.Out, "You selected: %s (%s)\n", entry.Name, entry.Path)
	common.LogInfo("Launching %s (%s)", entry.Name, entry.Path)

	err = c.launcher.Launch(entry.Path)

	var status *vpn.ExitStatus
	if errors.As(err, &status) {
		msg := fmt.Sprintf("%s command exited with status: %s", c.launcher.Name(), status)
		fmt.Fprintln(c.Err, c.style(c.Err).warn.Render(msg))
		return nil
	}
	return err
}

// PrintMenu prints the entries as "<n>: <name> (<path>)", numbered from 1
// in file order.
func (c *CLI) PrintMenu(cfg *config.Config) {
	fmt.Fprintln(c.Out, c.style(c.Out).heading.Render(msgMenuHeading))
	for i, entry := range cfg.VPNFiles {
		fmt.Fprintf(c.Out, "%d: %s (%s)\n", i+1, entry.Name, entry.Path)
	}
}

// ParseChoice converts one line of input into a menu number.
// Anything that is not an unsigned decimal integer, optionally prefixed
// with a single '+', yields 0.
func ParseChoice(line string) uint64 {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "++") {
		s = s[1:]
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Select returns the entry for a 1-based menu number.
func Select(cfg *config.Config, choice uint64) (*config.VPNEntry, error) {
	if choice == 0 || choice > uint64(len(cfg.VPNFiles)) {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidChoice, choice)
	}
	return &cfg.VPNFiles[choice-1], nil
}

func (c *CLI) configPath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}

	dir, err := common.ExecutableDir()
	if err != nil {
		return "", err
	}
	return config.Locate(dir), nil
}

// readLine reads a single line. End of input counts as an empty line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

type styles struct {
	heading lipgloss.Style
	warn    lipgloss.Style
}

// style returns styles rendered for w. Writers that are not terminals get
// plain text.
func (c *CLI) style(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`VPN Launcher - pick a VPN definition file and run openvpn on it

Usage:
  sudo vpn-launcher [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Log to stderr and ~/.config/vpn-launcher/logs
  --config PATH     Use PATH instead of config.json next to the binary
  --client NAME     VPN client to run instead of openvpn
  --help            Show this help message

Configuration:
  On first run a config.json with two placeholder entries is written next
  to the executable. Edit it to list your VPN files:

  {
    "vpn_files": [
      { "name": "Office", "path": "/etc/openvpn/office.ovpn" }
    ]
  }

  A config.yaml with the same keys is used instead when present.`)
}
