package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/config"
	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
	"github.com/cmoscosoz/mock-supabase-go/client"
	"github.com/cmoscosoz/mock-supabase-go/fixture"
	"github.com/cmoscosoz/mock-supabase-go/internal/debug"
)

var (
	flagFixture string
	flagDebug   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mock-supabase",
	Short: "In-memory mock of a Supabase-style table client",
	Long: `mock-supabase is an in-memory, deterministic stand-in for a remote-backed
table client. It loads tables from a fixture file and runs chainable
filter/sort/paginate queries against them, without a network or a database.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		// Flags win over config file and environment
		if cmd.Flags().Changed("fixture") {
			cfg.FixturePath = flagFixture
		}
		if cmd.Flags().Changed("debug") {
			cfg.Debug = flagDebug
		}

		debug.Init(cfg.Debug)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFixture, "fixture", "f", "fixture.yaml", "Path to the fixture file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// Execute is the main entry point for the CLI
func Execute() error {
	return rootCmd.Execute()
}

// loadClient builds a client over the configured fixture file.
func loadClient() (*client.Client, error) {
	spinner, _ := ui.PrintSpinner(fmt.Sprintf("loading fixture %s", cfg.FixturePath))
	tables, err := fixture.Load(cfg.FixturePath)
	if spinner != nil {
		if err != nil {
			spinner.Fail("fixture load failed")
		} else {
			spinner.Success(fmt.Sprintf("loaded %d tables from %s", len(tables), cfg.FixturePath))
		}
	}
	if err != nil {
		return nil, err
	}
	return client.New(tables), nil
}
