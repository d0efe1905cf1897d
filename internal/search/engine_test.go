package search

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

func mustEngine(entries ...docstore.DocumentEntry) (*Engine, []docstore.DocumentEntry) {
	e := NewEngine()
	for _, entry := range entries {
		e.Index(entry)
	}
	return e, entries
}

func TestEngine_Query_RanksTitleMatchAboveBodyMatch(t *testing.T) {
	titleHit := docstore.DocumentEntry{
		ID:      "a",
		Title:   "Button",
		Content: "# Button\n\nA simple control.",
	}
	bodyHit := docstore.DocumentEntry{
		ID:      "b",
		Title:   "Unrelated Component",
		Content: "# Unrelated Component\n\nThis text mentions a button in passing.",
	}
	// A document without the term keeps its idf above zero.
	noHit := docstore.DocumentEntry{
		ID:      "c",
		Title:   "Card",
		Content: "# Card\n\nA surface for grouped content.",
	}

	e, entries := mustEngine(titleHit, bodyHit, noHit)
	results := e.Query("button", entries, 10)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Document.ID != "a" {
		t.Errorf("top result ID = %q, want a (title match should outrank body match)", results[0].Document.ID)
	}
	if results[0].Relevance != 100 {
		t.Errorf("top result Relevance = %d, want 100", results[0].Relevance)
	}
}

func TestEngine_Query_FiltersToCandidateSet(t *testing.T) {
	a := docstore.DocumentEntry{ID: "a", Title: "Button", Content: "# Button\n\nclicks"}
	b := docstore.DocumentEntry{ID: "b", Title: "Button Group", Content: "# Button Group\n\nclicks"}

	e, _ := mustEngine(a, b)
	results := e.Query("button", []docstore.DocumentEntry{a}, 10)

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Document.ID != "a" {
		t.Errorf("result ID = %q, want a", results[0].Document.ID)
	}
}

func TestEngine_Query_EmptyQueryYieldsNoResults(t *testing.T) {
	e, entries := mustEngine(docstore.DocumentEntry{ID: "a", Title: "Button", Content: "# Button\n\nclicks"})
	if results := e.Query("", entries, 10); results != nil {
		t.Errorf("expected nil results for empty query, got %v", results)
	}
}

func TestEngine_Query_StopwordOnlyQueryYieldsNoResults(t *testing.T) {
	e, entries := mustEngine(docstore.DocumentEntry{ID: "a", Title: "Button", Content: "# Button\n\nclicks"})
	if results := e.Query("the and for", entries, 10); results != nil {
		t.Errorf("expected nil results for stopword-only query, got %v", results)
	}
}

func TestEngine_Query_RespectsLimit(t *testing.T) {
	entries := []docstore.DocumentEntry{
		{ID: "a", Title: "Button One", Content: "# Button One\n\nbutton text"},
		{ID: "b", Title: "Button Two", Content: "# Button Two\n\nbutton text"},
		{ID: "c", Title: "Button Three", Content: "# Button Three\n\nbutton text"},
	}
	e, _ := mustEngine(entries...)
	results := e.Query("button", entries, 2)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
}

func TestEngine_Query_TieBreaksByShorterThenLexicographicTitle(t *testing.T) {
	entries := []docstore.DocumentEntry{
		{ID: "a", Title: "Zeta", Content: "# Zeta\n\nwidget"},
		{ID: "b", Title: "Beta", Content: "# Beta\n\nwidget"},
	}
	e, _ := mustEngine(entries...)
	results := e.Query("widget", entries, 10)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Document.Title != "Beta" {
		t.Errorf("first result Title = %q, want Beta (lexicographic tie-break)", results[0].Document.Title)
	}
}

func TestEngine_Clear(t *testing.T) {
	e, entries := mustEngine(docstore.DocumentEntry{ID: "a", Title: "Button", Content: "# Button\n\nclicks"})
	e.Clear()
	if results := e.Query("button", entries, 10); results != nil {
		t.Errorf("expected nil results after Clear, got %v", results)
	}
}

func TestExcerpt_ContainsQueryTermAndIsBounded(t *testing.T) {
	content := strings.Repeat("padding word. ", 30) + "the quick button does something interesting here. " + strings.Repeat("trailing word. ", 30)
	e, entries := mustEngine(docstore.DocumentEntry{ID: "a", Title: "Doc", Content: content})
	results := e.Query("button", entries, 10)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if !strings.Contains(strings.ToLower(results[0].Excerpt), "button") {
		t.Errorf("excerpt does not contain query term: %q", results[0].Excerpt)
	}
	// padToBoundary may move each edge of the window up to 40 bytes outward.
	if len(results[0].Excerpt) > excerptWindow+2*40+2*len("…") {
		t.Errorf("excerpt length %d exceeds expected bound", len(results[0].Excerpt))
	}
}

func TestExcerpt_EmptyContent(t *testing.T) {
	if got := excerpt("", "button"); got != "" {
		t.Errorf("excerpt(\"\", ...) = %q, want empty", got)
	}
}
