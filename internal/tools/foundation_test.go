package tools

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

func TestGetFoundation_OverviewWhenTopicEmpty(t *testing.T) {
	c := newTestContext(t)
	got := c.GetFoundation("")
	if !strings.Contains(got, "Foundation topics") {
		t.Errorf("got %q", got)
	}
	for _, topic := range foundationTopics {
		if !strings.Contains(got, topic.Name) {
			t.Errorf("expected topic %q listed, got %q", topic.Name, got)
		}
	}
}

func TestGetFoundation_UnrecognizedTopic(t *testing.T) {
	c := newTestContext(t)
	got := c.GetFoundation("not-a-real-topic")
	if !strings.Contains(got, "not a recognized foundation topic") {
		t.Errorf("got %q", got)
	}
}

func TestGetFoundation_RecognizedButNotIndexed(t *testing.T) {
	c := newTestContext(t)
	got := c.GetFoundation("theming")
	if !strings.Contains(got, "recognized but not currently indexed") {
		t.Errorf("got %q", got)
	}
}

func TestGetFoundation_AliasResolvesAndReturnsContent(t *testing.T) {
	entry := docstore.DocumentEntry{
		ID:           "foundation/theming",
		Title:        "Theming",
		RelativePath: "01-foundation/03-theming.md",
		Content:      "# Theming\n\nDesign tokens and themes.\n",
		Module:       docstore.ModuleFoundation,
	}
	c := newTestContext(t, entry)
	got := c.GetFoundation("theme") // alias of "theming"
	if !strings.Contains(got, "# Theming") {
		t.Errorf("expected theming document content, got %q", got)
	}
}
