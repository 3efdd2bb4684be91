package commands

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
	"github.com/cmoscosoz/mock-supabase-go/cli/internal/watch"
	"github.com/cmoscosoz/mock-supabase-go/client"
	"github.com/cmoscosoz/mock-supabase-go/fixture"
	"github.com/cmoscosoz/mock-supabase-go/query/parser"
)

var replWatch bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive query loop over the fixture",
	Long: `Start an interactive loop that runs query lines against the fixture.

Besides query lines, the repl understands:

    \tables        list tables and row counts
    \reload        reload the fixture from disk
    \dump <path>   write the current store to a fixture file
    \quit          exit`,
	RunE: runRepl,
}

const replHelp = "Type a query line, e.g. `from users where age gte 30 order age asc`.\n\n" +
	"Commands: `\\tables` list tables, `\\reload` reload the fixture, " +
	"`\\dump <path>` write the store to a file, `\\quit` exit.\n"

func init() {
	replCmd.Flags().BoolVarP(&replWatch, "watch", "w", false, "Reload the fixture when it changes on disk")

	rootCmd.AddCommand(replCmd)
}

// newReloader watches a fixture file and delivers freshly loaded clients on
// the returned channel. The watcher goroutine never touches the client the
// repl loop is using; the loop swaps in a delivered client between lines,
// so the two goroutines share nothing but the channel.
func newReloader(path string, load func() (*client.Client, error)) (*watch.Watcher, <-chan *client.Client, error) {
	reloads := make(chan *client.Client, 1)
	w, err := watch.New(path, func() error {
		fresh, err := load()
		if err != nil {
			return err
		}
		// Keep only the newest pending reload
		select {
		case <-reloads:
		default:
		}
		reloads <- fresh
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return w, reloads, nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	c, err := loadClient()
	if err != nil {
		return err
	}

	ui.PrintHeader("mock-supabase", "interactive query repl — \\quit to exit")
	_ = ui.PrintMarkdown(replHelp)

	var reloads <-chan *client.Client
	if replWatch || cfg.Watch {
		w, ch, err := newReloader(cfg.FixturePath, loadClient)
		if err != nil {
			return err
		}
		w.Start()
		defer w.Stop()
		reloads = ch
	}

	prompt := ui.GetColorPrinters()["primary"]
	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print("> ")
		if !scanner.Scan() {
			break
		}

		// Pick up any reload that arrived while waiting for input.
		// A nil channel (watch disabled) never delivers.
		select {
		case fresh := <-reloads:
			c = fresh
			ui.PrintInfo("fixture reloaded: %s", cfg.FixturePath)
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, `\`) {
			if quit := runReplCommand(c, line); quit {
				break
			}
			continue
		}

		q, err := parser.Parse(line)
		if err != nil {
			ui.PrintError("invalid query: %v", err)
			continue
		}
		ui.PrintRows(q.Bind(c).Select())
	}

	return scanner.Err()
}

// runReplCommand handles backslash commands; returns true to exit the loop.
func runReplCommand(c *client.Client, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case `\quit`, `\q`:
		return true

	case `\tables`:
		printTables(c)

	case `\reload`:
		tables, err := fixture.Load(cfg.FixturePath)
		if err != nil {
			ui.PrintError("reload failed: %v", err)
			return false
		}
		*c = *client.New(tables)
		ui.PrintSuccess("fixture reloaded: %s", cfg.FixturePath)

	case `\dump`:
		if len(fields) < 2 {
			ui.PrintError(`usage: \dump <path>`)
			return false
		}
		if err := fixture.Dump(c.Store(), fields[1]); err != nil {
			ui.PrintError("dump failed: %v", err)
			return false
		}
		ui.PrintSuccess("store written to %s", fields[1])

	default:
		ui.PrintError("unknown command: %s", fields[0])
	}
	return false
}
