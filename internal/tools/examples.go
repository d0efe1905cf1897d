package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// GetComponentExamples resolves componentName and renders each of its
// labeled fenced code blocks as a numbered "Example N: {heading}"
// section, preserving the original language tag.
func (c *ServerContext) GetComponentExamples(componentName string) string {
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

	blocks := docstore.ExtractLabeledCodeBlocks(entry.Content)
	if len(blocks) == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%s has no code examples.\n\n", entry.Title)
		fmt.Fprintf(&b, "Try %s for the full document, or %s for related patterns.\n",
			hint(fmt.Sprintf("query_component(%q)", entry.Title)),
			hint("get_pattern()"))
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Examples\n\n", entry.Title)
	for i, block := range blocks {
		fmt.Fprintf(&b, "## Example %d: %s\n\n", i+1, block.SectionHeading)
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", block.Language, block.Code)
	}
	return b.String()
}
