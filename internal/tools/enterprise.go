package tools

import (
	"fmt"
	"path"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// matchingEnterpriseDocs returns, sorted by relative path, every
// enterprise-module document whose filename satisfies topic's predicate.
func matchingEnterpriseDocs(all []docstore.DocumentEntry, topic enterpriseTopicEntry) []docstore.DocumentEntry {
	var out []docstore.DocumentEntry
	for _, e := range all {
		filename := strings.ToLower(path.Base(e.RelativePath))
		if topic.Predicate(filename) {
			out = append(out, e)
		}
	}
	return sortedByRelativePath(out)
}

// GetEnterprise resolves topic (with aliases) against the predicate-
// defined enterprise topics, concatenating every matching document in
// relative-path order with a table of contents when more than one
// matches.
func (c *ServerContext) GetEnterprise(topic string) string {
	store, _ := c.snapshot()
	all := store.GetByModule(docstore.ModuleEnterprise)

	if strings.TrimSpace(topic) == "" {
		var b strings.Builder
		b.WriteString("# Enterprise topics\n\n")
		for _, t := range enterpriseTopics {
			aliases := ""
			if len(t.Aliases) > 0 {
				aliases = fmt.Sprintf(" (aliases: %s)", strings.Join(t.Aliases, ", "))
			}
			count := len(matchingEnterpriseDocs(all, t))
			fmt.Fprintf(&b, "- **%s**%s (%d) — %s\n", t.Name, aliases, count, t.Description)
		}
		return b.String()
	}

	canonical := resolveEnterpriseTopic(topic)
	if canonical == "" {
		names := make([]string, 0, len(enterpriseTopics))
		for _, t := range enterpriseTopics {
			names = append(names, t.Name)
		}
		return fmt.Sprintf("%q is not a recognized enterprise topic. Known topics: %s",
			topic, strings.Join(names, ", "))
	}

	var chosen enterpriseTopicEntry
	for _, t := range enterpriseTopics {
		if t.Name == canonical {
			chosen = t
			break
		}
	}

	docs := matchingEnterpriseDocs(all, chosen)
	if len(docs) == 0 {
		return fmt.Sprintf("Enterprise topic %q is recognized but not currently indexed.", canonical)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", strings.Title(strings.ReplaceAll(canonical, "-", " ")))

	if len(docs) > 1 {
		b.WriteString("## Table of Contents\n\n")
		for _, d := range docs {
			fmt.Fprintf(&b, "- %s\n", d.Title)
		}
		b.WriteString("\n")
	}

	for i, d := range docs {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", d.Title)
		b.WriteString(d.Content)
		b.WriteString("\n")
	}
	return b.String()
}
