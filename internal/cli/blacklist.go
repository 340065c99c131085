package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frostbar-io/frostbar/internal/config"
	"github.com/frostbar-io/frostbar/internal/daemon/editor"
)

var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Inspect or edit the dynamic window blacklist",
	RunE:  runBlacklistShow,
}

var blacklistPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the blacklist file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalBlacklistFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var blacklistEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the blacklist in your editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureDefaults(); err != nil {
			return err
		}
		path, err := config.GlobalBlacklistFile()
		if err != nil {
			return err
		}
		return editor.Open(path)
	},
}

var blacklistResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the stock blacklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RestoreStockBlacklist(); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Blacklist restored to defaults"))
		return nil
	},
}

func runBlacklistShow(cmd *cobra.Command, args []string) error {
	rules, err := config.LoadBlacklist()
	if err != nil {
		return fmt.Errorf("failed to load blacklist: %w", err)
	}

	if rules.Empty() {
		fmt.Println(styleHint.Render("No blacklist rules configured"))
		return nil
	}

	printRuleList("Classes", rules.Classes)
	printRuleList("Titles", rules.Titles)
	printRuleList("Executables", rules.Filenames)
	return nil
}

func printRuleList(label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintln(os.Stdout, styleLabel.Render(label+":"))
	for _, v := range values {
		fmt.Printf("  %s\n", styleValue.Render(v))
	}
}

func init() {
	blacklistCmd.AddCommand(blacklistPathCmd)
	blacklistCmd.AddCommand(blacklistEditCmd)
	blacklistCmd.AddCommand(blacklistResetCmd)
}
