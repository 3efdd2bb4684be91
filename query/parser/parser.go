// Package parser parses one-line ad-hoc queries using Participle.
//
// The grammar is a thin textual front end over the fluent builder, used by
// the CLI and the repl; it is not part of the library contract:
//
//	from users where age gte 30 and team eq "core" order age asc limit 10
package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/cmoscosoz/mock-supabase-go/client"
	"github.com/cmoscosoz/mock-supabase-go/query/ast"
	"github.com/cmoscosoz/mock-supabase-go/query/builder"
)

// queryLexer defines the token types for the query line language.
var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(from|where|and|order|limit|offset|asc|desc|eq|neq|gte|lte|gt|lt|true|false|null)\b`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Query is the parsed form of one query line.
type Query struct {
	Table   string
	Filters []ast.FilterClause
	OrderBy []ast.OrderClause
	Page    ast.Pagination
}

// rawQuery is the parse tree matching the grammar; it is converted to
// Query after parsing.
type rawQuery struct {
	Table   string        `parser:"\"from\" @Ident"`
	Where   *rawWhere     `parser:"(\"where\" @@)?"`
	Clauses []*rawTrailer `parser:"@@*"`
}

type rawWhere struct {
	First *rawCondition   `parser:"@@"`
	Rest  []*rawCondition `parser:"(\"and\" @@)*"`
}

type rawCondition struct {
	Column   string    `parser:"@Ident"`
	Operator string    `parser:"@(\"eq\" | \"neq\" | \"gte\" | \"lte\" | \"gt\" | \"lt\")"`
	Value    *rawValue `parser:"@@"`
}

type rawTrailer struct {
	Order  *rawOrder `parser:"\"order\" @@"`
	Limit  *int      `parser:"| \"limit\" @Number"`
	Offset *int      `parser:"| \"offset\" @Number"`
}

type rawOrder struct {
	Column    string `parser:"@Ident"`
	Direction string `parser:"@(\"asc\" | \"desc\")?"`
}

type rawValue struct {
	Str   *string  `parser:"@String"`
	Num   *float64 `parser:"| @Number"`
	True  bool     `parser:"| @\"true\""`
	False bool     `parser:"| @\"false\""`
	Null  bool     `parser:"| @\"null\""`
}

func (v *rawValue) value() any {
	switch {
	case v.Str != nil:
		return *v.Str
	case v.Num != nil:
		return *v.Num
	case v.True:
		return true
	case v.False:
		return false
	}
	return nil
}

var queryParser = participle.MustBuild[rawQuery](
	participle.Lexer(queryLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// Parse parses one query line.
func Parse(line string) (*Query, error) {
	raw, err := queryParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}
	return convert(raw), nil
}

func convert(raw *rawQuery) *Query {
	q := &Query{Table: raw.Table}

	if raw.Where != nil {
		conditions := append([]*rawCondition{raw.Where.First}, raw.Where.Rest...)
		for _, c := range conditions {
			q.Filters = append(q.Filters, ast.FilterClause{
				Column:   c.Column,
				Operator: ast.ComparisonOperator(c.Operator),
				Value:    c.Value.value(),
			})
		}
	}

	for _, t := range raw.Clauses {
		switch {
		case t.Order != nil:
			direction := ast.SortDesc
			if t.Order.Direction == "asc" {
				direction = ast.SortAsc
			}
			q.OrderBy = append(q.OrderBy, ast.OrderClause{Column: t.Order.Column, Direction: direction})
		case t.Limit != nil:
			q.Page.Limit = t.Limit
		case t.Offset != nil:
			q.Page.Offset = t.Offset
		}
	}

	return q
}

// Bind replays the parsed query onto a builder obtained from the client.
func (q *Query) Bind(c *client.Client) *builder.Builder {
	b := c.From(q.Table)
	for _, f := range q.Filters {
		switch f.Operator {
		case ast.OpEquals:
			b.Eq(f.Column, f.Value)
		case ast.OpNotEquals:
			b.Neq(f.Column, f.Value)
		case ast.OpGreaterThan:
			b.Gt(f.Column, f.Value)
		case ast.OpLessThan:
			b.Lt(f.Column, f.Value)
		case ast.OpGreaterOrEqual:
			b.Gte(f.Column, f.Value)
		case ast.OpLessOrEqual:
			b.Lte(f.Column, f.Value)
		}
	}
	for _, o := range q.OrderBy {
		if o.Direction == ast.SortAsc {
			b.Order(o.Column, builder.Ascending())
		} else {
			b.Order(o.Column)
		}
	}
	if q.Page.Limit != nil {
		b.Limit(*q.Page.Limit)
	}
	if q.Page.Offset != nil {
		b.Offset(*q.Page.Offset)
	}
	return b
}
