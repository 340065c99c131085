// Package cli implements the frostbar CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frostbar",
	Short: "Control the taskbar compositing daemon",
	Long: `Frostbar makes the taskbar translucent and adapts its appearance to
maximised windows, the start menu, and desktop peek. This CLI inspects and
edits the daemon's configuration; frostbard is the daemon itself.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(blacklistCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
