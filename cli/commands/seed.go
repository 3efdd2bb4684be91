package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
	"github.com/cmoscosoz/mock-supabase-go/client"
	"github.com/cmoscosoz/mock-supabase-go/fixture"
	"github.com/cmoscosoz/mock-supabase-go/store"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a starter fixture file",
	Long:  "Write a small example fixture to the configured fixture path, as a starting point for your own tables.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Overwrite an existing fixture file")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfg.FixturePath); err == nil && !seedForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.FixturePath)
	}

	c := client.New(nil)
	c.From("users").Insert(
		store.Row{"id": 1, "name": "Alice", "age": 34, "team": "core"},
		store.Row{"id": 2, "name": "Bob", "age": 28, "team": "core"},
		store.Row{"id": 3, "name": "Carol", "age": 41, "team": "infra"},
	)
	c.From("posts").Insert(
		store.Row{"id": 1, "author_id": 1, "title": "Hello", "published": true},
		store.Row{"id": 2, "author_id": 2, "title": "Draft", "published": false},
	)

	if err := fixture.Dump(c.Store(), cfg.FixturePath); err != nil {
		return err
	}

	ui.PrintSuccess("starter fixture written to %s", cfg.FixturePath)
	return nil
}
