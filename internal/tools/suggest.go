package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

const (
	suggestLimit       = 10
	suggestMinRelevance = 5
)

// contribution is one strategy's vote for a suggested component: a base
// relevance score and a human-readable reason string.
type contribution struct {
	relevance int
	reason    string
}

// suggestion accumulates every strategy's contributions for one
// resolved component entry before the merge rule collapses them to a
// single score.
type suggestion struct {
	entry         docstore.DocumentEntry
	contributions []contribution
}

// SuggestComponents combines the static keyword map, the search engine,
// and category inference to recommend components for a described UI.
func (c *ServerContext) SuggestComponents(uiDescription string) string {
	if strings.TrimSpace(uiDescription) == "" {
		return errorf("uiDescription is required")
	}

	store, engine := c.snapshot()
	lowerDesc := strings.ToLower(uiDescription)

	byID := make(map[string]*suggestion)

	contribute := func(componentName string, relevance int, reason string) {
		entry, ok := store.FindByName(componentName)
		if !ok {
			return
		}
		s, exists := byID[entry.ID]
		if !exists {
			s = &suggestion{entry: entry}
			byID[entry.ID] = s
		}
		s.contributions = append(s.contributions, contribution{relevance: relevance, reason: reason})
	}

	// Strategy 1: static keyword map.
	for _, row := range keywordMap {
		for _, kw := range row.Keywords {
			if strings.Contains(lowerDesc, kw) {
				for _, comp := range row.Components {
					contribute(comp, row.Relevance, fmt.Sprintf("matched: %q", kw))
				}
				break
			}
		}
	}

	// Strategy 2: search engine, top 2*limit results in components module.
	componentDocs := store.GetByModule(docstore.ModuleComponents)
	results := engine.Query(uiDescription, componentDocs, suggestLimit*2)
	for _, r := range results {
		contribute(r.Document.Title, r.Relevance, "search match")
	}

	// Strategy 3: category inference.
	for _, row := range categoryInferenceMap {
		for _, kw := range row.Keywords {
			if strings.Contains(lowerDesc, kw) {
				for _, comp := range store.GetByCategory(row.Category) {
					contribute(comp.Title, categoryInferenceRelevance, fmt.Sprintf("category: %s", row.Category))
				}
				break
			}
		}
	}

	if len(byID) == 0 {
		return fmt.Sprintf(
			"No component suggestions for %q. Try %s or %s for a broader view.",
			uiDescription, hint("search_docs(\""+uiDescription+"\")"), hint("list_all_docs()"),
		)
	}

	merged := make([]suggestion, 0, len(byID))
	for _, s := range byID {
		merged = append(merged, *s)
	}

	type scored struct {
		suggestion
		score   int
		reasons []string
	}
	var scoredList []scored
	for _, s := range merged {
		contribs := append([]contribution(nil), s.contributions...)
		sort.SliceStable(contribs, func(i, j int) bool { return contribs[i].relevance > contribs[j].relevance })

		score := contribs[0].relevance
		for _, extra := range contribs[1:] {
			score += extra.relevance / 2
		}
		if score > 100 {
			score = 100
		}
		if score < suggestMinRelevance {
			continue
		}

		reasons := make([]string, 0, len(contribs))
		for _, ctrb := range s.contributions {
			reasons = append(reasons, ctrb.reason)
		}
		scoredList = append(scoredList, scored{suggestion: s, score: score, reasons: reasons})
	}

	sort.SliceStable(scoredList, func(i, j int) bool {
		if scoredList[i].score != scoredList[j].score {
			return scoredList[i].score > scoredList[j].score
		}
		return scoredList[i].entry.Title < scoredList[j].entry.Title
	})
	if len(scoredList) > suggestLimit {
		scoredList = scoredList[:suggestLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Suggested components for %q\n\n", uiDescription)
	for i, s := range scoredList {
		fmt.Fprintf(&b, "%d. %s **%s** (%d%%)\n", i+1, trafficLight(s.score), s.entry.Title, s.score)
		if s.entry.Metadata.Description != "" {
			fmt.Fprintf(&b, "   %s\n", s.entry.Metadata.Description)
		}
		fmt.Fprintf(&b, "   Why: %s\n", strings.Join(s.reasons, "; "))
		category := s.entry.Category
		if category == "" {
			category = "-"
		}
		pkg := s.entry.Metadata.PackageName
		if pkg == "" {
			pkg = "-"
		}
		fmt.Fprintf(&b, "   Category: %s · Package: %s\n", category, pkg)
		fmt.Fprintf(&b, "   Use %s or %s.\n\n",
			hint(fmt.Sprintf("query_component(%q)", s.entry.Title)),
			hint(fmt.Sprintf("get_component_examples(%q)", s.entry.Title)))
	}
	return b.String()
}
