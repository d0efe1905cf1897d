package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// QueryComponent resolves componentName via the fuzzy resolver. On a
// miss it lists known components grouped by category; on a hit it
// prepends a metadata header to the document's raw content.
func (c *ServerContext) QueryComponent(componentName string) string {
	if strings.TrimSpace(componentName) == "" {
		return errorf("componentName is required")
	}

	store, _ := c.snapshot()
	entry, ok := store.FindByName(componentName)
	if !ok {
		components := store.GetByModule(docstore.ModuleComponents)
		var b strings.Builder
		fmt.Fprintf(&b, "No component matching %q was found.\n\n", componentName)
		if len(components) == 0 {
			b.WriteString("No components are currently indexed.")
			return b.String()
		}
		b.WriteString("Known components:\n\n")
		for _, line := range groupedByCategory(components) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		return b.String()
	}

	h := header(entry.Title, [][2]string{
		{"Package", codeSpan(entry.Metadata.PackageName)},
		{"Import", codeSpan(entry.Metadata.ImportStatement)},
		{"Module", string(entry.Module)},
		{"Category", entry.Category},
	})
	return h + entry.Content
}

func codeSpan(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}
