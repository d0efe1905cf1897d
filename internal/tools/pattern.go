package tools

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

var patternNumericPrefixRE = regexp.MustCompile(`^\d+-`)

// numericPrefixStripped removes a leading "NN-" numeric prefix from a
// filename stem, mirroring docstore's id-derivation rule.
func numericPrefixStripped(s string) string {
	return patternNumericPrefixRE.ReplaceAllString(s, "")
}

// patternSubfolder returns the lowercased name of the file's immediate
// parent folder, which in the usual patterns/<category>/<file> layout is
// the category folder, e.g. "patterns/forms/01-validation.md" -> "forms". Patterns are not
// components, so docstore.DocumentEntry.Category is always "" for
// them; the category here is derived straight from the path.
func patternSubfolder(relativePath string) string {
	segments := strings.Split(path.ToSlash(relativePath), "/")
	if len(segments) < 2 {
		return ""
	}
	return strings.ToLower(segments[len(segments)-2])
}

func patternsInCategory(entries []docstore.DocumentEntry, category string) []docstore.DocumentEntry {
	var out []docstore.DocumentEntry
	for _, e := range entries {
		if patternSubfolder(e.RelativePath) == category {
			out = append(out, e)
		}
	}
	return out
}

// GetPattern implements the three-arity pattern tool: no arguments ->
// overview of pattern categories; category only -> sorted listing of
// patterns in it; category + name -> fuzzy find within that category.
func (c *ServerContext) GetPattern(patternCategory, patternName string) string {
	store, _ := c.snapshot()
	patternCategory = strings.ToLower(strings.TrimSpace(patternCategory))
	patternName = strings.TrimSpace(patternName)

	all := store.GetByModule(docstore.ModulePatterns)

	if patternCategory == "" {
		var b strings.Builder
		b.WriteString("# Pattern categories\n\n")
		for _, cat := range patternCategories {
			count := len(patternsInCategory(all, cat))
			fmt.Fprintf(&b, "- **%s** (%d) — %s\n", cat, count, hint(fmt.Sprintf("get_pattern(%q)", cat)))
		}
		return b.String()
	}

	if !isPatternCategory(patternCategory) {
		return fmt.Sprintf("%q is not a recognized pattern category. Known categories: %s",
			patternCategory, strings.Join(patternCategories, ", "))
	}

	candidates := sortedByRelativePath(patternsInCategory(all, patternCategory))

	if patternName == "" {
		if len(candidates) == 0 {
			return fmt.Sprintf("No patterns are currently indexed under %q.", patternCategory)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "## %s Patterns\n\n", strings.Title(patternCategory))
		for _, e := range candidates {
			fmt.Fprintf(&b, "- %s — %s\n", e.Title, hint(fmt.Sprintf("get_pattern(%q,%q)", patternCategory, e.Title)))
		}
		return b.String()
	}

	match := findPatternByName(candidates, patternName)
	if match == nil {
		var b strings.Builder
		fmt.Fprintf(&b, "No pattern matching %q was found under %q.\n\n", patternName, patternCategory)
		if len(candidates) > 0 {
			b.WriteString("Available patterns:\n\n")
			for _, e := range candidates {
				fmt.Fprintf(&b, "- %s\n", e.Title)
			}
		}
		return b.String()
	}

	h := header(match.Title, [][2]string{
		{"Module", string(match.Module)},
		{"Category", patternCategory},
	})
	return h + match.Content
}

// findPatternByName runs the pattern-scoped fuzzy cascade: title
// substring, then filename-minus-numeric-prefix substring, then id
// substring. First tier with a hit wins; within a tier the first match
// in relative-path order wins.
func findPatternByName(candidates []docstore.DocumentEntry, query string) *docstore.DocumentEntry {
	lowerQuery := strings.ToLower(query)

	for i := range candidates {
		if strings.Contains(strings.ToLower(candidates[i].Title), lowerQuery) {
			return &candidates[i]
		}
	}
	for i := range candidates {
		base := path.Base(candidates[i].RelativePath)
		base = strings.TrimSuffix(base, path.Ext(base))
		base = numericPrefixStripped(base)
		if strings.Contains(strings.ToLower(base), lowerQuery) {
			return &candidates[i]
		}
	}
	for i := range candidates {
		if strings.Contains(strings.ToLower(candidates[i].ID), lowerQuery) {
			return &candidates[i]
		}
	}
	return nil
}
