package tools

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/search"
)

const (
	guideComponentFetch = 16
	guideComponentKeep  = 8
	guidePatternFetch   = 8
	guidePatternKeep    = 4
)

var importStatementRE = regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`)

// quickImportBlocks parses each component's import statement, merges
// identifiers per package, and renders a single fenced block holding
// one import statement per package - multi-line when a package pulls
// in 5 or more identifiers.
func quickImportBlocks(results []search.Result) string {
	order := []string{}
	idents := map[string][]string{}
	seen := map[string]map[string]bool{}

	for _, r := range results {
		stmt := r.Document.Metadata.ImportStatement
		if stmt == "" {
			continue
		}
		m := importStatementRE.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}
		pkg := m[2]
		if _, ok := seen[pkg]; !ok {
			seen[pkg] = map[string]bool{}
			order = append(order, pkg)
		}
		for _, raw := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(raw)
			if name == "" || seen[pkg][name] {
				continue
			}
			seen[pkg][name] = true
			idents[pkg] = append(idents[pkg], name)
		}
	}

	if len(order) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("```tsx\n")
	for _, pkg := range order {
		names := idents[pkg]
		if len(names) >= 5 {
			fmt.Fprintf(&b, "import {\n")
			for _, n := range names {
				fmt.Fprintf(&b, "  %s,\n", n)
			}
			fmt.Fprintf(&b, "} from '%s';\n", pkg)
		} else {
			fmt.Fprintf(&b, "import { %s } from '%s';\n", strings.Join(names, ", "), pkg)
		}
	}
	b.WriteString("```\n")
	return b.String()
}

// componentKeywordTips maps a keyword that, if present in any chosen
// component's title or category, unlocks a dedicated implementation
// tip line.
var componentKeywordTips = []struct {
	keyword string
	tip     string
}{
	{"form", "Wrap related fields in a `Field` to get consistent label/validation layout."},
	{"button", "Use `appearance=\"primary\"` for the single most important action on a view."},
	{"dialog", "Control open state explicitly and restore focus to the trigger on close."},
	{"toast", "Mount a single `Toaster` near the app root and dispatch via `useToastController`."},
	{"table", "Prefer `DataGrid` over a hand-rolled table for built-in sorting/selection."},
	{"menu", "Close the menu on item activation; don't manage open state manually if avoidable."},
}

// accessibilityKeywordItems maps a category keyword to an additional
// accessibility checklist item for components in that category.
var accessibilityKeywordItems = []struct {
	keyword string
	item    string
}{
	{"forms", "Every input has an associated, visible or `aria-label`-provided label."},
	{"buttons", "Icon-only buttons carry an accessible name via `aria-label`."},
	{"overlays", "Focus is trapped inside the dialog/drawer while open and restored on close."},
	{"navigation", "Current location is indicated via `aria-current` where applicable."},
	{"data-display", "Sortable columns expose their sort state to assistive technology."},
	{"feedback", "Toasts/alerts use an appropriate `role` (`status` or `alert`)."},
}

// GetImplementationGuide is the highest-level tool: it searches both
// the components and patterns modules for goal, then assembles a
// structured Markdown implementation plan.
func (c *ServerContext) GetImplementationGuide(goal string) string {
	if strings.TrimSpace(goal) == "" {
		return errorf("goal is required")
	}

	store, engine := c.snapshot()

	componentResults := engine.Query(goal, store.GetByModule(docstore.ModuleComponents), guideComponentFetch)
	if len(componentResults) > guideComponentKeep {
		componentResults = componentResults[:guideComponentKeep]
	}
	patternResults := engine.Query(goal, store.GetByModule(docstore.ModulePatterns), guidePatternFetch)
	if len(patternResults) > guidePatternKeep {
		patternResults = patternResults[:guidePatternKeep]
	}

	if len(componentResults) == 0 && len(patternResults) == 0 {
		modules := store.GetModules()
		names := make([]string, 0, len(modules))
		for _, m := range modules {
			names = append(names, m.Name)
		}
		return fmt.Sprintf(
			"No components or patterns matched %q.\n\nAvailable modules: %s. Try %s with broader terms.",
			goal, strings.Join(names, ", "), hint("search_docs(\""+goal+"\")"),
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Implementation Guide: %s\n\n", goal)
	fmt.Fprintf(&b, "## Overview\n\nThis guide covers building **%s** with Fluent UI React components.\n\n", goal)

	if block := quickImportBlocks(componentResults); block != "" {
		b.WriteString("## Recommended Components\n\n### Quick Import\n\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	if len(componentResults) > 0 {
		b.WriteString("### Components\n\n")
		for _, r := range componentResults {
			fmt.Fprintf(&b, "- %s %s (%d%%) — %s\n",
				starRating(r.Relevance), r.Document.Title, r.Relevance, hint(fmt.Sprintf("query_component(%q)", r.Document.Title)))
		}
		b.WriteString("\n")
	}

	if len(patternResults) > 0 {
		b.WriteString("## Relevant Patterns\n\n")
		for _, r := range patternResults {
			category := patternSubfolder(r.Document.RelativePath)
			fmt.Fprintf(&b, "- **%s** (%d%%) — %s\n",
				r.Document.Title, r.Relevance, hint(fmt.Sprintf("get_pattern(%q,%q)", category, r.Document.Title)))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Implementation Steps\n\n")
	step := 1
	fmt.Fprintf(&b, "%d. Wrap your application root with `FluentProvider`:\n\n", step)
	b.WriteString("   ```tsx\n   <FluentProvider theme={webLightTheme}>\n     <App />\n   </FluentProvider>\n   ```\n\n")
	step++
	fmt.Fprintf(&b, "%d. Install the package(s) listed in the Quick Import block above.\n\n", step)
	step++
	fmt.Fprintf(&b, "%d. Import the recommended components as shown above.\n\n", step)
	step++

	var tips []string
	for _, r := range componentResults {
		haystack := strings.ToLower(r.Document.Title + " " + r.Document.Category)
		for _, kt := range componentKeywordTips {
			if strings.Contains(haystack, kt.keyword) {
				tips = append(tips, kt.tip)
			}
		}
	}
	tips = dedupeStrings(tips)
	if len(tips) > 0 {
		fmt.Fprintf(&b, "%d. Component-specific tips:\n\n", step)
		for _, t := range tips {
			fmt.Fprintf(&b, "   - %s\n", t)
		}
		b.WriteString("\n")
		step++
	}

	fmt.Fprintf(&b, "%d. Style custom layout with design tokens rather than hardcoded values:\n\n", step)
	b.WriteString("   ```tsx\n   const useStyles = makeStyles({\n     root: { padding: tokens.spacingHorizontalM },\n   });\n   ```\n\n")
	step++
	fmt.Fprintf(&b, "%d. Review the Relevant Patterns section above for composition guidance before writing custom layout code.\n\n", step)

	b.WriteString("## Accessibility Checklist\n\n")
	b.WriteString("- [ ] Every interactive element is reachable and operable by keyboard alone.\n")
	b.WriteString("- [ ] Color is never the only signal for state or error.\n")
	b.WriteString("- [ ] Focus order follows visual/reading order.\n")
	var a11yItems []string
	for _, r := range componentResults {
		cat := strings.ToLower(r.Document.Category)
		for _, ak := range accessibilityKeywordItems {
			if strings.Contains(cat, ak.keyword) {
				a11yItems = append(a11yItems, ak.item)
			}
		}
	}
	for _, item := range dedupeStrings(a11yItems) {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}
	b.WriteString("\n")

	b.WriteString("## Next Steps\n\n")
	top := componentResults
	if len(top) > 3 {
		top = top[:3]
	}
	for _, r := range top {
		fmt.Fprintf(&b, "- %s\n", hint(fmt.Sprintf("get_component_examples(%q)", r.Document.Title)))
	}
	b.WriteString("- " + hint("get_foundation(\"fluent-provider\")") + "\n")
	b.WriteString("- " + hint("get_foundation(\"styling-griffel\")") + "\n")

	return b.String()
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
