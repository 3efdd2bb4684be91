package executor

import (
	"fmt"
	"strconv"

	"github.com/cmoscosoz/mock-supabase-go/query/ast"
)

// matchesFilters reports whether a row satisfies every filter clause.
// An empty clause set matches everything; evaluation short-circuits on the
// first failing clause.
func matchesFilters(row map[string]any, filters []ast.FilterClause) bool {
	for _, f := range filters {
		if !matchesClause(row, f) {
			return false
		}
	}
	return true
}

func matchesClause(row map[string]any, f ast.FilterClause) bool {
	value := row[f.Column]

	if f.Operator.Ordering() {
		// Magnitude comparisons are numeric. A value that cannot be read
		// as a number (on either side, including a missing column) never
		// matches.
		lhs, ok := toFloat(value)
		if !ok {
			return false
		}
		rhs, ok := toFloat(f.Value)
		if !ok {
			return false
		}
		switch f.Operator {
		case ast.OpGreaterThan:
			return lhs > rhs
		case ast.OpLessThan:
			return lhs < rhs
		case ast.OpGreaterOrEqual:
			return lhs >= rhs
		case ast.OpLessOrEqual:
			return lhs <= rhs
		}
		return false
	}

	// Equality operators compare string representations, so 1 == "1" and
	// true == "true", matching the loose typing of the wire protocol this
	// store stands in for.
	equal := stringForm(value) == stringForm(f.Value)
	if f.Operator == ast.OpNotEquals {
		return !equal
	}
	return equal
}

// compareValues orders two row values by the natural ordering of their
// runtime type: numbers numerically, strings lexicographically, bools with
// false before true. Mixed or non-orderable types fall back to comparing
// string forms so the sort stays deterministic.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			}
			return 0
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case !ab && bb:
				return -1
			case ab && !bb:
				return 1
			}
			return 0
		}
	}

	as, bs := stringForm(a), stringForm(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

// toFloat coerces a value to float64. Numeric Go types and numeric strings
// coerce; everything else does not.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func stringForm(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}
