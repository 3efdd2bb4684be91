// Package store provides the in-memory table store backing the mock client.
package store

import (
	"sort"

	"github.com/cmoscosoz/mock-supabase-go/internal/debug"
)

// Row is a single record: a schema-free mapping from column name to value.
// Values are plain Go scalars (string, numeric types, bool, nil) or nested
// maps and slices, as produced by yaml/json decoding.
type Row = map[string]any

// Store holds named tables, each an ordered sequence of rows.
//
// Store keeps a reference to the table map it was constructed with, so
// mutations made through a query builder are visible to the caller's map and
// to every subsequent query. Tables are created lazily on first insert.
//
// Store performs no locking. It models a single logical sequence of calls;
// concurrent mutation requires external synchronization.
type Store struct {
	tables map[string][]Row
}

// New creates a store over the given table map. The map is held by
// reference, not copied; a nil map starts the store empty.
func New(tables map[string][]Row) *Store {
	if tables == nil {
		tables = make(map[string][]Row)
	}
	return &Store{tables: tables}
}

// Rows returns the live row slice for a table, or nil if the table does not
// exist. Callers must not reorder the returned slice.
func (s *Store) Rows(table string) []Row {
	return s.tables[table]
}

// SetRows replaces the row sequence of a table, creating it if absent.
func (s *Store) SetRows(table string, rows []Row) {
	s.tables[table] = rows
}

// Append adds rows to the end of a table, creating the table if absent.
func (s *Store) Append(table string, rows ...Row) {
	s.tables[table] = append(s.tables[table], rows...)
	debug.Debug("store append", "table", table, "rows", len(rows), "total", len(s.tables[table]))
}

// Tables returns the names of all tables in sorted order.
func (s *Store) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of rows in a table; zero if the table is absent.
func (s *Store) Len(table string) int {
	return len(s.tables[table])
}

// Reset drops every table, leaving the store empty.
func (s *Store) Reset() {
	for name := range s.tables {
		delete(s.tables, name)
	}
}

// Snapshot returns a deep copy of the store's tables, useful for test
// isolation and for dumping fixtures.
func (s *Store) Snapshot() map[string][]Row {
	out := make(map[string][]Row, len(s.tables))
	for name, rows := range s.tables {
		copied := make([]Row, len(rows))
		for i, row := range rows {
			copied[i] = CloneRow(row)
		}
		out[name] = copied
	}
	return out
}

// CloneRow returns a shallow copy of a row. Nested values are shared.
func CloneRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
