package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

// errorf renders the standard "**Error:** ..." line required of every
// input-error response.
func errorf(format string, args ...any) string {
	return "**Error:** " + fmt.Sprintf(format, args...)
}

// header renders a level-1 title followed by "**Key:** value" metadata
// lines and a "---" separator, per the output format convention shared
// by every content-bearing tool response.
func header(title string, fields [][2]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, kv := range fields {
		if kv[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "**%s:** %s\n", kv[0], kv[1])
	}
	b.WriteString("\n---\n\n")
	return b.String()
}

// hint renders a follow-up tool call suggestion in backticks.
func hint(call string) string {
	return "`" + call + "`"
}

// indicators renders the tag line used by search/category listings:
// module, category, has-examples, has-props glyphs.
func indicators(entry docstore.DocumentEntry) string {
	parts := []string{"📁 " + string(entry.Module)}
	if entry.Category != "" {
		parts = append(parts, "🏷️ "+entry.Category)
	}
	if entry.Metadata.HasCodeExamples {
		parts = append(parts, "💻 has examples")
	}
	if entry.Metadata.HasPropsTable {
		parts = append(parts, "📋 has props")
	}
	return strings.Join(parts, " · ")
}

// starRating renders a single star when relevance/score is at least 50,
// the "notable result" threshold used by the implementation guide's
// component list.
func starRating(relevance int) string {
	if relevance >= 50 {
		return "⭐"
	}
	return ""
}

// trafficLight renders the suggestion confidence glyph.
func trafficLight(relevance int) string {
	switch {
	case relevance >= 70:
		return "🟢"
	case relevance >= 40:
		return "🟡"
	default:
		return "⚪"
	}
}

// sortedByTitle returns entries sorted alphabetically by title.
func sortedByTitle(entries []docstore.DocumentEntry) []docstore.DocumentEntry {
	out := append([]docstore.DocumentEntry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// sortedByRelativePath returns entries sorted by relative path
// ascending, preserving the numeric ordering of prefixed filenames.
func sortedByRelativePath(entries []docstore.DocumentEntry) []docstore.DocumentEntry {
	out := append([]docstore.DocumentEntry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].RelativePath < out[j].RelativePath })
	return out
}

// groupedByCategory groups component entries by category, sorted by
// category name, entries within each category sorted by title.
func groupedByCategory(entries []docstore.DocumentEntry) []string {
	byCategory := make(map[string][]docstore.DocumentEntry)
	for _, e := range entries {
		cat := e.Category
		if cat == "" {
			cat = "uncategorized"
		}
		byCategory[cat] = append(byCategory[cat], e)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var lines []string
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("### %s", c))
		for _, e := range sortedByTitle(byCategory[c]) {
			lines = append(lines, fmt.Sprintf("- %s (`%s`) %s", e.Title, e.ID, docGlyphs(e)))
		}
	}
	return lines
}
