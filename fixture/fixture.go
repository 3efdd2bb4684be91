// Package fixture loads and dumps store contents as YAML or JSON files.
//
// A fixture document maps table names to row lists:
//
//	users:
//	  - id: 1
//	    name: Alice
//	  - id: 2
//	    name: Bob
//	posts: []
package fixture

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/cmoscosoz/mock-supabase-go/internal/debug"
	"github.com/cmoscosoz/mock-supabase-go/store"
)

// AppFs is the filesystem fixtures are read from and written to. Tests
// swap in an afero.MemMapFs.
var AppFs = afero.NewOsFs()

// Load reads a fixture file and returns its table map. The format is
// chosen by extension: .json is JSON, everything else is parsed as YAML.
func Load(path string) (map[string][]store.Row, error) {
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	tables, err := Parse(data, isJSON(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}

	debug.Debug("fixture loaded", "path", path, "tables", len(tables))
	return tables, nil
}

// Parse decodes fixture bytes into a table map.
func Parse(data []byte, asJSON bool) (map[string][]store.Row, error) {
	raw := make(map[string][]store.Row)
	if asJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	// yaml.v3 decodes empty documents to a nil map
	if raw == nil {
		raw = make(map[string][]store.Row)
	}
	return raw, nil
}

// Dump writes a snapshot of the store to a fixture file, format chosen by
// extension as in Load.
func Dump(s *store.Store, path string) error {
	snapshot := s.Snapshot()

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(snapshot, "", "  ")
	} else {
		data, err = yaml.Marshal(snapshot)
	}
	if err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}

	if err := afero.WriteFile(AppFs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}

	debug.Debug("fixture dumped", "path", path, "tables", len(snapshot))
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
