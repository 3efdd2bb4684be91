// Package ast defines the typed clauses accumulated by the query builder.
package ast

// ComparisonOperator represents a filter comparison operator
type ComparisonOperator string

const (
	OpEquals         ComparisonOperator = "eq"
	OpNotEquals      ComparisonOperator = "neq"
	OpGreaterThan    ComparisonOperator = "gt"
	OpLessThan       ComparisonOperator = "lt"
	OpGreaterOrEqual ComparisonOperator = "gte"
	OpLessOrEqual    ComparisonOperator = "lte"
)

// Ordering reports whether the operator compares magnitudes (gt/lt/gte/lte)
// rather than string equality.
func (op ComparisonOperator) Ordering() bool {
	switch op {
	case OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual:
		return true
	}
	return false
}

// FilterClause is a single per-column predicate. A builder keeps at most one
// active filter per column; filters on different columns are AND-combined.
type FilterClause struct {
	Column   string
	Operator ComparisonOperator
	Value    any
}

// SortDirection represents sort direction
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// OrderClause is one key of a multi-key sort; earlier clauses take
// precedence over later ones.
type OrderClause struct {
	Column    string
	Direction SortDirection
}

// Pagination holds the optional offset and limit applied after filtering
// and ordering. nil means unset.
type Pagination struct {
	Offset *int
	Limit  *int
}
