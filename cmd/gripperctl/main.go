// Gripperctl is a terminal control panel for the OnRobot 3FG15 gripper.
//
// It talks JSON/HTTP to the gripper's control service and keeps a live
// status display in sync with the device: a fixed-cadence status poller
// plus a forced re-poll after every command.
//
// Usage:
//
//	gripperctl [command] [flags]
//
// Running without arguments launches the interactive control panel.
// See 'gripperctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RBEGamer/OnRobot3FG15/internal/logging"
	"github.com/RBEGamer/OnRobot3FG15/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gripperctl",
	Short: "3FG15 Gripper Control Panel",
	Long: `A terminal control panel for the OnRobot 3FG15 gripper.

Talks to the gripper's JSON/HTTP control service: live status display,
open/close/move/flex/stop actuation and force/diameter/grip-type
parameters.

If no command is specified, the interactive panel will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the panel when no subcommand provided
		return runPanel(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gripperctl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
