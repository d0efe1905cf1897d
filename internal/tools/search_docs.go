package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// Fallback default/max search limits, used when a ServerContext has no
// configured Search limits (e.g. built directly in tests rather than
// via NewServerContext), matching common.NewDefaultConfig's Search values.
const (
	fallbackDefaultSearchLimit = 10
	fallbackMaxSearchLimit     = 25
)

// clampLimit applies the default/max search limit rule shared by every
// tool that accepts an optional limit argument, consulting the
// ServerContext's configured Search.DefaultLimit/MaxLimit (config.go's
// C8 Configuration component) rather than hardcoded constants.
func (c *ServerContext) clampLimit(limit int) int {
	defaultLimit := c.DefaultSearchLimit
	if defaultLimit <= 0 {
		defaultLimit = fallbackDefaultSearchLimit
	}
	maxLimit := c.MaxSearchLimit
	if maxLimit <= 0 {
		maxLimit = fallbackMaxSearchLimit
	}

	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// SearchDocs runs the ranked search engine over the corpus, optionally
// restricted to one module, and renders a numbered result list.
func (c *ServerContext) SearchDocs(query, module string, limit int) string {
	if strings.TrimSpace(query) == "" {
		return errorf("query is required")
	}

	store, engine := c.snapshot()
	limit = c.clampLimit(limit)

	var candidates []docstore.DocumentEntry
	if module != "" {
		mod := docstore.Module(strings.ToLower(strings.TrimSpace(module)))
		candidates = store.GetByModule(mod)
		if len(candidates) == 0 {
			return fmt.Sprintf(
				"No results for %q in module %q. Known modules: %s",
				query, module, moduleNameList(store),
			)
		}
	} else {
		candidates = store.All()
	}

	results := engine.Query(query, candidates, limit)
	if len(results) == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "No results for %q.\n\n", query)
		b.WriteString("Suggestions:\n")
		b.WriteString("- Try simpler or fewer terms.\n")
		if module != "" {
			b.WriteString("- Remove the module filter.\n")
		}
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for %q\n\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s** (%d%%)\n", i+1, r.Document.Title, r.Relevance)
		fmt.Fprintf(&b, "   %s\n", indicators(r.Document))
		if r.Excerpt != "" {
			fmt.Fprintf(&b, "   > %s\n", r.Excerpt)
		}
		fmt.Fprintf(&b, "   Use %s for the full document.\n\n", hint(fmt.Sprintf("query_component(%q)", r.Document.Title)))
	}
	return b.String()
}

func moduleNameList(store *docstore.Store) string {
	modules := store.GetModules()
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}
