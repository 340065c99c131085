package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/frostbar-io/frostbar/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the frostbard daemon",
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the daemon is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		running, info, err := config.IsDaemonRunning()
		if err != nil {
			return err
		}
		if !running {
			fmt.Println(styleHint.Render("Daemon is not running"))
			return nil
		}

		fmt.Println(styleSuccess.Render("Daemon is running"))
		printField("PID", fmt.Sprintf("%d", info.PID))
		printField("Instance", info.InstanceID)
		printField("Started", info.StartedAt.Local().Format(time.RFC1123))
		return nil
	},
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		running, info, err := config.IsDaemonRunning()
		if err != nil {
			return err
		}
		if !running {
			fmt.Println(styleHint.Render("Daemon is not running"))
			return nil
		}

		if err := stopDaemon(info.PID); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render(fmt.Sprintf("Stop requested (PID %d)", info.PID)))
		return nil
	},
}

func init() {
	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}
