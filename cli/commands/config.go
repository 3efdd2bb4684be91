package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/config"
	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.PrintTable([]string{"setting", "value"}, [][]string{
			{"fixture_path", cfg.FixturePath},
			{"debug", strconv.FormatBool(cfg.Debug)},
			{"watch", strconv.FormatBool(cfg.Watch)},
		})
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective configuration to the user config directory",
	Long: `Write the effective configuration (config file, environment and flags
merged) to $HOME/.config/mock-supabase/.mock-supabase.yaml so it applies
to future runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		ui.PrintSuccess("configuration saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSaveCmd)
	rootCmd.AddCommand(configCmd)
}
