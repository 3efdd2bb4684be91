package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
	"github.com/cmoscosoz/mock-supabase-go/query/parser"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query <query-line>",
	Short: "Run a one-line query against the fixture",
	Long: `Run a one-line query against the fixture and print the matching rows.

The query language mirrors the builder API:

    from <table> [where <col> <op> <value> [and ...]]
                 [order <col> [asc|desc]]... [limit N] [offset N]

Operators: eq, neq, gt, lt, gte, lte. Order defaults to descending.`,
	Example: `  mock-supabase query 'from users'
  mock-supabase query 'from users where age gte 30 and team eq "core" order age asc limit 10'`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print rows as JSON instead of a table")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	c, err := loadClient()
	if err != nil {
		return err
	}

	q, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	rows := q.Bind(c).Select()

	if queryJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	ui.PrintRows(rows)
	return nil
}
