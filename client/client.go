// Package client provides the top-level handle of the mock tabular client.
//
// Client is a drop-in stand-in for a remote-backed table client: callers
// obtain it over a plain in-memory table map and exercise the same
// From(...).Eq(...).Select() chains they would run against the real thing,
// without a network or a database.
package client

import (
	"github.com/cmoscosoz/mock-supabase-go/query/builder"
	"github.com/cmoscosoz/mock-supabase-go/store"
)

// Client wraps an in-memory store and hands out query builders.
type Client struct {
	store *store.Store
}

// New creates a client over the given table map. The map is held by
// reference, so mutations made through builders are visible in the caller's
// map. A nil map starts empty.
func New(tables map[string][]store.Row) *Client {
	return &Client{store: store.New(tables)}
}

// NewFromStore creates a client over an existing store.
func NewFromStore(s *store.Store) *Client {
	return &Client{store: s}
}

// From returns a query builder bound to the named table. It always
// succeeds; the table does not need to exist until the first insert.
func (c *Client) From(table string) *builder.Builder {
	return builder.New(c.store, table)
}

// Store returns the underlying store.
func (c *Client) Store() *store.Store {
	return c.store
}
