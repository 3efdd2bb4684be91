// Package executor evaluates accumulated query state against the store.
package executor

import (
	"sort"

	"github.com/cmoscosoz/mock-supabase-go/internal/debug"
	"github.com/cmoscosoz/mock-supabase-go/query/ast"
	"github.com/cmoscosoz/mock-supabase-go/store"
)

// Executor runs terminal operations for one table of a store.
type Executor struct {
	store *store.Store
	table string
}

// New creates an executor bound to a table. The table does not need to
// exist yet.
func New(s *store.Store, table string) *Executor {
	return &Executor{store: s, table: table}
}

// Select returns the rows matching the filters, ordered, then paginated.
// The store is not mutated. A missing table yields an empty result.
func (e *Executor) Select(filters []ast.FilterClause, orderBy []ast.OrderClause, page ast.Pagination) []store.Row {
	var matched []store.Row
	for _, row := range e.store.Rows(e.table) {
		if matchesFilters(row, filters) {
			matched = append(matched, row)
		}
	}

	if len(orderBy) > 0 {
		sortRows(matched, orderBy)
	}

	matched = paginate(matched, page)
	debug.Debug("select", "table", e.table, "filters", len(filters), "returned", len(matched))
	return matched
}

// Insert appends the given rows to the table in order, creating the table
// if absent, and returns exactly the rows that were written. Filters are
// deliberately not consulted; insert is unconditional.
func (e *Executor) Insert(rows []store.Row) []store.Row {
	e.store.Append(e.table, rows...)
	return rows
}

// Update merges data over a copy of every row matching the filters,
// replaces each row in place at its position, and returns the post-merge
// rows. An empty filter set updates every row.
func (e *Executor) Update(data store.Row, filters []ast.FilterClause) []store.Row {
	rows := e.store.Rows(e.table)
	var updated []store.Row
	for i, row := range rows {
		if !matchesFilters(row, filters) {
			continue
		}
		merged := store.CloneRow(row)
		for k, v := range data {
			merged[k] = v
		}
		rows[i] = merged
		updated = append(updated, merged)
	}
	debug.Debug("update", "table", e.table, "filters", len(filters), "updated", len(updated))
	return updated
}

// Delete removes every row matching the filters, preserving the relative
// order of the remaining rows, and returns the removed rows in their
// original order. An empty filter set deletes every row.
func (e *Executor) Delete(filters []ast.FilterClause) []store.Row {
	rows := e.store.Rows(e.table)
	if rows == nil {
		return nil
	}

	var removed []store.Row
	kept := rows[:0]
	for _, row := range rows {
		if matchesFilters(row, filters) {
			removed = append(removed, row)
		} else {
			kept = append(kept, row)
		}
	}
	e.store.SetRows(e.table, kept)
	debug.Debug("delete", "table", e.table, "filters", len(filters), "removed", len(removed))
	return removed
}

// sortRows stable-sorts rows by the order clauses, left to right. The first
// key that distinguishes two rows decides; full ties keep input order.
func sortRows(rows []store.Row, orderBy []ast.OrderClause) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, clause := range orderBy {
			cmp := compareValues(rows[i][clause.Column], rows[j][clause.Column])
			if cmp == 0 {
				continue
			}
			if clause.Direction == ast.SortDesc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func paginate(rows []store.Row, page ast.Pagination) []store.Row {
	if page.Offset != nil {
		if *page.Offset >= len(rows) {
			return nil
		}
		if *page.Offset > 0 {
			rows = rows[*page.Offset:]
		}
	}
	if page.Limit != nil {
		if *page.Limit <= 0 {
			return nil
		}
		if *page.Limit < len(rows) {
			rows = rows[:*page.Limit]
		}
	}
	return rows
}
