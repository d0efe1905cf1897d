package tools

import (
	"fmt"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// GetFoundation resolves topic (with aliases) against the fixed set of
// six foundation topics, falling back to an overview listing when topic
// is empty.
func (c *ServerContext) GetFoundation(topic string) string {
	store, _ := c.snapshot()

	if strings.TrimSpace(topic) == "" {
		var b strings.Builder
		b.WriteString("# Foundation topics\n\n")
		for _, t := range foundationTopics {
			aliases := ""
			if len(t.Aliases) > 0 {
				aliases = fmt.Sprintf(" (aliases: %s)", strings.Join(t.Aliases, ", "))
			}
			fmt.Fprintf(&b, "- **%s**%s — %s\n", t.Name, aliases, t.Description)
		}
		return b.String()
	}

	canonical := resolveFoundationTopic(topic)
	if canonical == "" {
		names := make([]string, 0, len(foundationTopics))
		for _, t := range foundationTopics {
			names = append(names, t.Name)
		}
		return fmt.Sprintf("%q is not a recognized foundation topic. Known topics: %s",
			topic, strings.Join(names, ", "))
	}

	entries := store.GetByModule(docstore.ModuleFoundation)
	var match *docstore.DocumentEntry
	for i := range entries {
		if strings.Contains(strings.ToLower(entries[i].ID), canonical) ||
			strings.Contains(strings.ToLower(entries[i].RelativePath), canonical) {
			match = &entries[i]
			break
		}
	}
	if match == nil {
		return fmt.Sprintf("Foundation topic %q is recognized but not currently indexed.", canonical)
	}

	h := header(match.Title, [][2]string{
		{"Module", string(match.Module)},
	})
	return h + match.Content
}
