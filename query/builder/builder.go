// Package builder provides the fluent query builder API.
//
// A Builder is obtained from a client's From call, accumulates filter,
// order, and pagination state through chained calls, and is consumed by
// exactly one terminal verb (Select, Insert, Update, Delete). Every chainer
// mutates and returns the same builder. Nothing prevents reusing a builder
// after a terminal call; behavior is defined by the accumulated state at
// call time.
package builder

import (
	"github.com/cmoscosoz/mock-supabase-go/query/ast"
	"github.com/cmoscosoz/mock-supabase-go/query/executor"
	"github.com/cmoscosoz/mock-supabase-go/store"
)

// Builder accumulates query state for one table.
type Builder struct {
	table   string
	exec    *executor.Executor
	filters []ast.FilterClause
	orderBy []ast.OrderClause
	page    ast.Pagination
}

// New creates a builder bound to a table of the given store.
func New(s *store.Store, table string) *Builder {
	return &Builder{
		table: table,
		exec:  executor.New(s, table),
	}
}

// Eq filters rows whose column equals value.
func (b *Builder) Eq(column string, value any) *Builder {
	return b.addFilter(column, ast.OpEquals, value)
}

// Neq filters rows whose column does not equal value.
func (b *Builder) Neq(column string, value any) *Builder {
	return b.addFilter(column, ast.OpNotEquals, value)
}

// Gt filters rows whose column is numerically greater than value.
func (b *Builder) Gt(column string, value any) *Builder {
	return b.addFilter(column, ast.OpGreaterThan, value)
}

// Lt filters rows whose column is numerically less than value.
func (b *Builder) Lt(column string, value any) *Builder {
	return b.addFilter(column, ast.OpLessThan, value)
}

// Gte filters rows whose column is numerically greater than or equal to value.
func (b *Builder) Gte(column string, value any) *Builder {
	return b.addFilter(column, ast.OpGreaterOrEqual, value)
}

// Lte filters rows whose column is numerically less than or equal to value.
func (b *Builder) Lte(column string, value any) *Builder {
	return b.addFilter(column, ast.OpLessOrEqual, value)
}

// addFilter records a clause, replacing any earlier clause on the same
// column. Clauses on different columns are AND-combined.
func (b *Builder) addFilter(column string, op ast.ComparisonOperator, value any) *Builder {
	clause := ast.FilterClause{Column: column, Operator: op, Value: value}
	for i, f := range b.filters {
		if f.Column == column {
			b.filters[i] = clause
			return b
		}
	}
	b.filters = append(b.filters, clause)
	return b
}

// OrderOption configures an Order call.
type OrderOption func(*ast.OrderClause)

// Ascending sorts the key in ascending order. Without it a key sorts
// descending, which is the contract this mock preserves from the client it
// stands in for.
func Ascending() OrderOption {
	return func(c *ast.OrderClause) { c.Direction = ast.SortAsc }
}

// Order appends a sort key. Keys accumulate into a multi-key sort with
// left-to-right precedence. The default direction is descending; pass
// Ascending() to flip it.
func (b *Builder) Order(column string, opts ...OrderOption) *Builder {
	clause := ast.OrderClause{Column: column, Direction: ast.SortDesc}
	for _, opt := range opts {
		opt(&clause)
	}
	b.orderBy = append(b.orderBy, clause)
	return b
}

// Limit caps the number of rows returned by Select. Calling it again
// overwrites the previous value.
func (b *Builder) Limit(n int) *Builder {
	b.page.Limit = &n
	return b
}

// Offset skips that many leading rows in Select results. Calling it again
// overwrites the previous value.
func (b *Builder) Offset(n int) *Builder {
	b.page.Offset = &n
	return b
}

// Select evaluates the accumulated state and returns the matching rows,
// ordered and paginated. The store is not mutated; a missing table yields
// an empty result.
func (b *Builder) Select() []store.Row {
	return b.exec.Select(b.filters, b.orderBy, b.page)
}

// Insert appends the given rows to the table, creating it if absent, and
// returns the inserted rows. Any chained filters are ignored; insert is
// unconditional.
func (b *Builder) Insert(rows ...store.Row) []store.Row {
	return b.exec.Insert(rows)
}

// Update merges data over every row matching the accumulated filters and
// returns the post-merge rows. With no filters set, every row is updated.
func (b *Builder) Update(data store.Row) []store.Row {
	return b.exec.Update(data, b.filters)
}

// Delete removes every row matching the accumulated filters, preserving the
// order of the remaining rows, and returns the removed rows. With no
// filters set, every row is removed.
func (b *Builder) Delete() []store.Row {
	return b.exec.Delete(b.filters)
}

// Table returns the table name the builder is bound to.
func (b *Builder) Table() string {
	return b.table
}

// Filters returns the accumulated filter clauses.
func (b *Builder) Filters() []ast.FilterClause {
	return b.filters
}

// OrderBy returns the accumulated order clauses.
func (b *Builder) OrderBy() []ast.OrderClause {
	return b.orderBy
}

// Page returns the accumulated pagination state.
func (b *Builder) Page() ast.Pagination {
	return b.page
}
