package tools

import (
	"fmt"
	"strings"
)

// ListByCategory lists indexed categories when category is empty, or
// the components filed under the given category sorted by title.
func (c *ServerContext) ListByCategory(category string) string {
	store, _ := c.snapshot()
	category = strings.ToLower(strings.TrimSpace(category))

	if category == "" {
		categories := store.GetCategories()
		if len(categories) == 0 {
			return "No categories are currently indexed."
		}
		var b strings.Builder
		b.WriteString("# Component categories\n\n")
		for _, cat := range categories {
			fmt.Fprintf(&b, "- **%s** (%d)\n", cat.Name, cat.Count)
		}
		return b.String()
	}

	entries := store.GetByCategory(category)
	if len(entries) == 0 {
		categories := store.GetCategories()
		names := make([]string, 0, len(categories))
		for _, cat := range categories {
			names = append(names, cat.Name)
		}
		return fmt.Sprintf("No components in category %q. Known categories: %s", category, strings.Join(names, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s Components\n\n", strings.Title(strings.ReplaceAll(category, "-", " ")))
	for _, e := range sortedByTitle(entries) {
		fmt.Fprintf(&b, "### %s\n", e.Title)
		b.WriteString(indicators(e) + "\n")
		if e.Metadata.ImportStatement != "" {
			fmt.Fprintf(&b, "%s\n", codeSpan(e.Metadata.ImportStatement))
		}
		if e.Metadata.Description != "" {
			fmt.Fprintf(&b, "%s\n", e.Metadata.Description)
		}
		fmt.Fprintf(&b, "Use %s for the full document.\n\n", hint(fmt.Sprintf("query_component(%q)", e.Title)))
	}
	return b.String()
}
