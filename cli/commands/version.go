package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/update"
	"github.com/cmoscosoz/mock-supabase-go/cli/internal/version"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.Detailed())

		if versionCheck {
			return update.CheckForUpdates(version.Version)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check whether a newer release is known")

	rootCmd.AddCommand(versionCmd)
}
