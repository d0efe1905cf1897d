package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// GetPropsReference resolves componentName, tries the labeled props
// section, and falls back to any pipe table whose header looks like a
// props table. The fallback is attempted regardless of module (spec's
// Open Question is resolved in favor of always attempting it).
func (c *ServerContext) GetPropsReference(componentName string) string {
	if strings.TrimSpace(componentName) == "" {
		return errorf("componentName is required")
	}

	store, _ := c.snapshot()
	entry, ok := store.FindByName(componentName)
	if !ok {
		return fmt.Sprintf(
			"No component matching %q was found. Use %s to browse available components.",
			componentName, hint("list_all_docs()"),
		)
	}

	h := header(entry.Title+" Props", [][2]string{
		{"Module", string(entry.Module)},
		{"Category", entry.Category},
	})

	if section := docstore.ExtractPropsSection(entry.Content); section != "" {
		return h + section
	}

	tables := docstore.FallbackPropsTables(entry.Content)
	if len(tables) > 0 {
		var b strings.Builder
		b.WriteString(h)
		b.WriteString("Extracted from inline tables (no dedicated Props section was found).\n\n")
		for i, t := range tables {
			fmt.Fprintf(&b, "### Table %d\n\n%s\n\n", i+1, t)
		}
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s has no props reference.\n\n", entry.Title)
	if entry.Module != docstore.ModuleComponents {
		fmt.Fprintf(&b, "Note: %s is not a component document (module: %s).\n\n", entry.Title, entry.Module)
	}
	fmt.Fprintf(&b, "Try %s for the full document.\n", hint(fmt.Sprintf("query_component(%q)", entry.Title)))
	return b.String()
}
