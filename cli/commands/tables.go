package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
	"github.com/cmoscosoz/mock-supabase-go/client"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadClient()
		if err != nil {
			return err
		}
		printTables(c)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func printTables(c *client.Client) {
	names := c.Store().Tables()
	if len(names) == 0 {
		ui.PrintInfo("fixture has no tables")
		return
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(c.Store().Len(name))})
	}
	ui.PrintTable([]string{"table", "rows"}, rows)
}
