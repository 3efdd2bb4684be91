package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cmoscosoz/mock-supabase-go/client"
	"github.com/cmoscosoz/mock-supabase-go/fixture"
)

// The repl loop owns its client exclusively; the watcher goroutine only
// loads and sends. This test keeps querying the current client while a
// fixture change is pending, the way the loop does between input lines,
// and must stay clean under the race detector.
func TestReloaderDeliversFreshClient(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - id: 1\n"), 0o644))

	load := func() (*client.Client, error) {
		tables, err := fixture.Load(path)
		if err != nil {
			return nil, err
		}
		return client.New(tables), nil
	}

	c, err := load()
	require.NoError(t, err)
	require.Len(t, c.From("users").Select(), 1)

	w, reloads, err := newReloader(path, load)
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("users:\n  - id: 1\n  - id: 2\n"), 0o644))

	timeout := time.After(10 * time.Second)
	for {
		select {
		case fresh := <-reloads:
			c = fresh
			require.Len(t, c.From("users").Select(), 2)
			return
		case <-timeout:
			t.Fatal("reload was not delivered")
		case <-time.After(5 * time.Millisecond):
			_ = c.From("users").Select()
		}
	}
}
