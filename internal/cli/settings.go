package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostbar-io/frostbar/internal/config"
	"github.com/frostbar-io/frostbar/internal/daemon/editor"
	"github.com/frostbar-io/frostbar/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or edit the daemon settings",
	RunE:  runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the settings file in your editor",
	Long: `Open the settings file in $EDITOR. A running daemon picks the change
up automatically once the file is saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureDefaults(); err != nil {
			return err
		}
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		return editor.Open(path)
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RestoreStockSettings(); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Settings restored to defaults"))
		return nil
	},
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	printField("Taskbar accent", string(settings.Taskbar.Accent))
	printField("Taskbar color", settings.Taskbar.Color)
	printField("Dynamic accent", string(settings.Dynamic.Appearance.Accent))
	printField("Dynamic color", settings.Dynamic.Appearance.Color)
	printField("Dynamic workspace", onOff(settings.Dynamic.Workspace))
	printField("Dynamic start menu", onOff(settings.Dynamic.StartMenu))
	printField("Normal while peeking", onOff(settings.Dynamic.NormalOnPeek))
	printField("Peek button", string(settings.Peek))
	printField("Verbose logging", onOff(settings.Verbose))
	printField("Poll interval", fmt.Sprintf("%dms", settings.Polling.IntervalMS))
	printField("Classify every", fmt.Sprintf("%d ticks", settings.Polling.ClassifyEvery))
	printField("Cache hit max", fmt.Sprintf("%d", settings.Polling.CacheHitMax))

	if path, err := config.GlobalSettingsFile(); err == nil {
		fmt.Println(styleHint.Render("\nFile: " + path))
	}
	return nil
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", styleLabel.Render(fmt.Sprintf("%-22s", label+":")), styleValue.Render(value))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// validate a settings file without a daemon around, used by `settings check`.
var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the settings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			fmt.Println(styleError.Render("Settings file is invalid:"))
			return err
		}

		var problems []string
		if _, err := models.ParseColor(settings.Taskbar.Color); err != nil {
			problems = append(problems, err.Error())
		}
		if _, err := models.ParseColor(settings.Dynamic.Appearance.Color); err != nil {
			problems = append(problems, err.Error())
		}
		problems = append(problems, settings.Normalize(true)...)

		if len(problems) == 0 {
			fmt.Println(styleSuccess.Render("Settings file is valid"))
			return nil
		}
		for _, p := range problems {
			fmt.Println(styleError.Render("  " + p))
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	},
}

func init() {
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsEditCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsCheckCmd)
}
