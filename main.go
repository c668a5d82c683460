// Package main provides the entry point for VPN Launcher.
// VPN Launcher lists the VPN definition files configured next to its binary,
// asks which one to use, and runs OpenVPN on it in the foreground.
//
// Flow:
//   - Refuse to continue unless running as root
//   - Create a default config.json beside the executable on first run
//   - Print a numbered menu and read a single choice
//   - Run `openvpn <file>` attached to the terminal and report its exit status
//
// Usage:
//
//	sudo vpn-launcher [options]
//
// Environment:
//
//	The openvpn client must be available in PATH.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yllada/vpn-launcher/cli"
	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/vpn"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	os.Exit(run())
}

// run parses flags, runs the launcher, and returns the process exit code.
func run() int {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	showVersion := fs.Bool("version", false, "Show version and exit")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	showHelp := fs.Bool("help", false, "Show help message")
	configPath := fs.String("config", "", "Config file to use instead of the one next to the executable")
	client := fs.String("client", common.DefaultClientBinary, "VPN client binary, looked up in PATH")
	fs.Usage = cli.PrintHelp

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *showHelp {
		cli.PrintHelp()
		return 0
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		return 0
	}

	logConfig := common.LogConfig{Level: common.LevelInfo}
	if *verbose {
		logConfig = common.LogConfig{
			Level:       common.LevelDebug,
			Console:     os.Stderr,
			MaxFileSize: common.DefaultLogMaxFileSize,
			MaxBackups:  common.DefaultLogMaxBackups,
		}
	}
	common.InitLogger(logConfig)
	defer common.CloseLogger()

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)

	app := cli.New(vpn.NewLauncher(*client))
	app.ConfigPath = *configPath
	if *verbose {
		app.LogDir = common.GetLogDir()
	}

	if err := app.Run(); err != nil {
		common.LogError("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
