// Package tools implements the twelve MCP query tools over the
// document corpus. Every exported ServerContext tool method returns a Markdown
// string and never returns a Go error for user-input problems - those
// are encoded in the returned text per the dispatcher's contract.
package tools

import (
	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/index"
	"github.com/fluentdocs/mcp-server/internal/search"
)

// ServerContext aggregates the store, engine, and docs root a tool
// handler needs, replacing the module-level mutable handles the
// teacher's document/search services relied on.
type ServerContext struct {
	Index *index.IndexSet

	// DefaultSearchLimit and MaxSearchLimit mirror config.Search from
	// internal/common; zero values fall back to the package defaults
	// (10/25) so a ServerContext built directly in tests still behaves
	// sensibly without threading configuration through.
	DefaultSearchLimit int
	MaxSearchLimit     int
}

// NewServerContext wraps an IndexSet for use by the tool layer, along
// with the configured default/max search_docs limits (config.Search).
func NewServerContext(idx *index.IndexSet, defaultSearchLimit, maxSearchLimit int) *ServerContext {
	return &ServerContext{
		Index:              idx,
		DefaultSearchLimit: defaultSearchLimit,
		MaxSearchLimit:     maxSearchLimit,
	}
}

// snapshot returns the current store/engine pair, guaranteed to be from
// the same indexing generation even across a concurrent reindex.
func (c *ServerContext) snapshot() (*docstore.Store, *search.Engine) {
	return c.Index.Snapshot()
}
