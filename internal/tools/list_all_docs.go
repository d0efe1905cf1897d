package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// ListAllDocs enumerates the corpus by module, sub-grouping the
// components module by category, and closes with a trailing corpus
// statistics summary line.
func (c *ServerContext) ListAllDocs() string {
	store, _ := c.snapshot()
	counts := make(map[docstore.Module]int)
	for _, m := range store.GetModules() {
		counts[docstore.Module(m.Name)] = m.Count
	}
	if len(counts) == 0 {
		return "No documents are currently indexed."
	}

	var b strings.Builder
	b.WriteString("# All documentation\n\n")

	total := 0
	moduleCount := 0
	for _, mod := range docstore.ModuleOrder {
		count, present := counts[mod]
		if !present {
			continue
		}
		moduleCount++
		total += count
		fmt.Fprintf(&b, "## %s (%d)\n\n", mod, count)

		entries := store.GetByModule(mod)
		if mod == docstore.ModuleComponents {
			for _, line := range groupedByCategory(entries) {
				if strings.HasPrefix(line, "### ") {
					b.WriteString(line + "\n")
					continue
				}
				b.WriteString(line + "\n")
			}
			b.WriteString("\n")
			continue
		}

		for _, e := range sortedByTitle(entries) {
			fmt.Fprintf(&b, "- %s (`%s`) %s\n", e.Title, e.ID, docGlyphs(e))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\n%d document(s) indexed across %d module(s).\n", total, moduleCount)
	return b.String()
}

func docGlyphs(e docstore.DocumentEntry) string {
	var glyphs []string
	if e.Metadata.HasCodeExamples {
		glyphs = append(glyphs, "💻")
	}
	if e.Metadata.HasPropsTable {
		glyphs = append(glyphs, "📋")
	}
	return strings.Join(glyphs, " ")
}
