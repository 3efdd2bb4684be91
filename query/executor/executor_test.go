package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmoscosoz/mock-supabase-go/query/ast"
	"github.com/cmoscosoz/mock-supabase-go/store"
)

func intp(n int) *int { return &n }

func newExecutor(t *testing.T, rows []store.Row) (*Executor, *store.Store) {
	t.Helper()
	s := store.New(map[string][]store.Row{"users": rows})
	return New(s, "users"), s
}

func TestMatchesFilters_EmptySetMatchesAll(t *testing.T) {
	require.True(t, matchesFilters(store.Row{"a": 1}, nil))
	require.True(t, matchesFilters(store.Row{}, nil))
}

func TestMatchesFilters_Equality(t *testing.T) {
	row := store.Row{"id": 7, "name": "Ana", "active": true, "note": nil}

	tests := []struct {
		name   string
		clause ast.FilterClause
		want   bool
	}{
		{"eq same int", ast.FilterClause{Column: "id", Operator: ast.OpEquals, Value: 7}, true},
		{"eq numeric string", ast.FilterClause{Column: "id", Operator: ast.OpEquals, Value: "7"}, true},
		{"eq float form", ast.FilterClause{Column: "id", Operator: ast.OpEquals, Value: float64(7)}, true},
		{"eq mismatch", ast.FilterClause{Column: "id", Operator: ast.OpEquals, Value: 8}, false},
		{"eq bool as string", ast.FilterClause{Column: "active", Operator: ast.OpEquals, Value: "true"}, true},
		{"eq nil column", ast.FilterClause{Column: "note", Operator: ast.OpEquals, Value: nil}, true},
		{"eq missing column vs nil", ast.FilterClause{Column: "ghost", Operator: ast.OpEquals, Value: nil}, true},
		{"neq mismatch", ast.FilterClause{Column: "name", Operator: ast.OpNotEquals, Value: "Bob"}, true},
		{"neq same", ast.FilterClause{Column: "name", Operator: ast.OpNotEquals, Value: "Ana"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, matchesClause(row, tt.clause))
		})
	}
}

func TestMatchesFilters_Ordering(t *testing.T) {
	row := store.Row{"age": 30, "name": "Ana"}

	tests := []struct {
		name   string
		clause ast.FilterClause
		want   bool
	}{
		{"gt below", ast.FilterClause{Column: "age", Operator: ast.OpGreaterThan, Value: 29}, true},
		{"gt equal", ast.FilterClause{Column: "age", Operator: ast.OpGreaterThan, Value: 30}, false},
		{"gte equal", ast.FilterClause{Column: "age", Operator: ast.OpGreaterOrEqual, Value: 30}, true},
		{"lt above", ast.FilterClause{Column: "age", Operator: ast.OpLessThan, Value: 31}, true},
		{"lte equal", ast.FilterClause{Column: "age", Operator: ast.OpLessOrEqual, Value: 30}, true},
		{"numeric string operand", ast.FilterClause{Column: "age", Operator: ast.OpGreaterThan, Value: "29.5"}, true},
		// Non-numeric on either side never matches
		{"non-numeric row value", ast.FilterClause{Column: "name", Operator: ast.OpGreaterThan, Value: 1}, false},
		{"non-numeric operand", ast.FilterClause{Column: "age", Operator: ast.OpGreaterThan, Value: "old"}, false},
		{"missing column", ast.FilterClause{Column: "ghost", Operator: ast.OpLessThan, Value: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, matchesClause(row, tt.clause))
		})
	}
}

func TestSelect_FilterConjunction(t *testing.T) {
	rows := []store.Row{
		{"id": 1, "age": 25, "team": "core"},
		{"id": 2, "age": 35, "team": "core"},
		{"id": 3, "age": 45, "team": "infra"},
		{"id": 4, "age": 55, "team": "core"},
	}
	e, _ := newExecutor(t, rows)

	filters := []ast.FilterClause{
		{Column: "team", Operator: ast.OpEquals, Value: "core"},
		{Column: "age", Operator: ast.OpGreaterThan, Value: 30},
	}
	got := e.Select(filters, nil, ast.Pagination{})

	// Matches exactly the rows satisfying every clause independently
	var want []store.Row
	for _, row := range rows {
		if matchesClause(row, filters[0]) && matchesClause(row, filters[1]) {
			want = append(want, row)
		}
	}
	require.Equal(t, want, got)
	require.Len(t, got, 2)
}

func TestSelect_MissingTable(t *testing.T) {
	s := store.New(nil)
	e := New(s, "nope")
	require.Empty(t, e.Select(nil, nil, ast.Pagination{}))
}

func TestSelect_MultiKeyOrderingStability(t *testing.T) {
	rows := []store.Row{
		{"a": 1, "b": 2},
		{"a": 1, "b": 1},
		{"a": 2, "b": 0},
	}
	e, _ := newExecutor(t, rows)

	orderBy := []ast.OrderClause{
		{Column: "a", Direction: ast.SortAsc},
		{Column: "b", Direction: ast.SortAsc},
	}
	got := e.Select(nil, orderBy, ast.Pagination{})

	want := []store.Row{
		{"a": 1, "b": 1},
		{"a": 1, "b": 2},
		{"a": 2, "b": 0},
	}
	require.Equal(t, want, got)
}

func TestSelect_TiesPreserveInputOrder(t *testing.T) {
	rows := []store.Row{
		{"id": 1, "g": 1},
		{"id": 2, "g": 1},
		{"id": 3, "g": 1},
	}
	e, _ := newExecutor(t, rows)

	got := e.Select(nil, []ast.OrderClause{{Column: "g", Direction: ast.SortDesc}}, ast.Pagination{})
	require.Equal(t, rows, got)
}

func TestSelect_SortsStringsAndBools(t *testing.T) {
	rows := []store.Row{
		{"name": "carol"},
		{"name": "alice"},
		{"name": "bob"},
	}
	e, _ := newExecutor(t, rows)

	got := e.Select(nil, []ast.OrderClause{{Column: "name", Direction: ast.SortAsc}}, ast.Pagination{})
	require.Equal(t, "alice", got[0]["name"])
	require.Equal(t, "bob", got[1]["name"])
	require.Equal(t, "carol", got[2]["name"])

	require.Equal(t, -1, compareValues(false, true))
	require.Equal(t, 1, compareValues(true, false))
	require.Equal(t, 0, compareValues(true, true))
}

func TestSelect_Pagination(t *testing.T) {
	rows := []store.Row{
		{"id": 1},
		{"id": 2},
		{"id": 3},
	}
	e, _ := newExecutor(t, rows)

	t.Run("offset and limit compose", func(t *testing.T) {
		got := e.Select(nil, nil, ast.Pagination{Offset: intp(1), Limit: intp(1)})
		require.Len(t, got, 1)
		require.Equal(t, 2, got[0]["id"])
	})

	t.Run("offset beyond length yields empty", func(t *testing.T) {
		require.Empty(t, e.Select(nil, nil, ast.Pagination{Offset: intp(10)}))
	})

	t.Run("limit beyond length is a no-op", func(t *testing.T) {
		require.Len(t, e.Select(nil, nil, ast.Pagination{Limit: intp(10)}), 3)
	})

	t.Run("limit zero yields empty", func(t *testing.T) {
		require.Empty(t, e.Select(nil, nil, ast.Pagination{Limit: intp(0)}))
	})
}

func TestInsert_AppendsAndCreatesTable(t *testing.T) {
	s := store.New(nil)
	e := New(s, "fresh")

	inserted := e.Insert([]store.Row{{"id": 1}, {"id": 2}})
	require.Len(t, inserted, 2)
	require.Equal(t, 2, s.Len("fresh"))
	require.Equal(t, inserted, s.Rows("fresh"))
}

func TestUpdate_ScopedMerge(t *testing.T) {
	rows := []store.Row{
		{"id": 1, "name": "Ana", "age": 30},
		{"id": 2, "name": "Bea", "age": 40},
	}
	e, s := newExecutor(t, rows)

	updated := e.Update(store.Row{"age": 31}, []ast.FilterClause{
		{Column: "id", Operator: ast.OpEquals, Value: 1},
	})

	require.Len(t, updated, 1)
	require.Equal(t, 31, updated[0]["age"])
	// Untouched columns survive the merge
	require.Equal(t, "Ana", updated[0]["name"])
	// Replaced in place, non-matching row unchanged
	require.Equal(t, 31, s.Rows("users")[0]["age"])
	require.Equal(t, 40, s.Rows("users")[1]["age"])
}

func TestUpdate_NoFiltersUpdatesAll(t *testing.T) {
	e, s := newExecutor(t, []store.Row{{"id": 1}, {"id": 2}})

	updated := e.Update(store.Row{"seen": true}, nil)
	require.Len(t, updated, 2)
	for _, row := range s.Rows("users") {
		require.Equal(t, true, row["seen"])
	}
}

func TestUpdate_MissingTable(t *testing.T) {
	e := New(store.New(nil), "nope")
	require.Empty(t, e.Update(store.Row{"x": 1}, nil))
}

func TestDelete_RemovesExactlyMatches(t *testing.T) {
	rows := []store.Row{
		{"id": 1, "team": "core"},
		{"id": 2, "team": "infra"},
		{"id": 3, "team": "core"},
		{"id": 4, "team": "infra"},
	}
	e, s := newExecutor(t, rows)

	removed := e.Delete([]ast.FilterClause{{Column: "team", Operator: ast.OpEquals, Value: "core"}})

	require.Len(t, removed, 2)
	require.Equal(t, 1, removed[0]["id"])
	require.Equal(t, 3, removed[1]["id"])

	remaining := s.Rows("users")
	require.Len(t, remaining, 2)
	require.Equal(t, 2, remaining[0]["id"])
	require.Equal(t, 4, remaining[1]["id"])
}

func TestDelete_NoFiltersDeletesAll(t *testing.T) {
	e, s := newExecutor(t, []store.Row{{"id": 1}, {"id": 2}})
	removed := e.Delete(nil)
	require.Len(t, removed, 2)
	require.Equal(t, 0, s.Len("users"))
}

func TestDelete_MissingTable(t *testing.T) {
	e := New(store.New(nil), "nope")
	require.Empty(t, e.Delete(nil))
}
