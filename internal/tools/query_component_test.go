package tools

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/index"
	"github.com/fluentdocs/mcp-server/internal/search"
)

// newTestContext builds a ServerContext over a store/engine pair seeded
// directly with entries, bypassing the filesystem walk used in
// production (internal/index.BuildIndex).
func newTestContext(t *testing.T, entries ...docstore.DocumentEntry) *ServerContext {
	t.Helper()
	store := docstore.NewStore()
	engine := search.NewEngine()
	for _, e := range entries {
		store.Add(e)
		engine.Index(e)
	}
	return &ServerContext{Index: index.NewIndexSetForTest(store, engine)}
}

func buttonEntry() docstore.DocumentEntry {
	return docstore.DocumentEntry{
		ID:           "components/buttons/Button",
		Title:        "Button",
		RelativePath: "02-components/buttons/Button.md",
		Content:      "# Button\n\nA clickable button.\n\n## Button Props\n\n| Prop | Type |\n| --- | --- |\n| appearance | string |\n",
		Module:       docstore.ModuleComponents,
		Category:     "buttons",
		Metadata: docstore.Metadata{
			PackageName:     "@fluentui/react-components",
			ImportStatement: "import { Button } from '@fluentui/react-components'",
			Description:     "A clickable button.",
			HasPropsTable:   true,
		},
	}
}

func TestQueryComponent_RequiresName(t *testing.T) {
	c := newTestContext(t)
	got := c.QueryComponent("  ")
	if !strings.HasPrefix(got, "**Error:**") {
		t.Errorf("QueryComponent(\"\") = %q, want error prefix", got)
	}
}

func TestQueryComponent_Found(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.QueryComponent("button")
	if !strings.Contains(got, "# Button") {
		t.Errorf("expected title header in output, got %q", got)
	}
	if !strings.Contains(got, "@fluentui/react-components") {
		t.Errorf("expected package metadata in output, got %q", got)
	}
}

func TestQueryComponent_NotFoundListsKnownComponents(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.QueryComponent("zzz-nonexistent")
	if !strings.Contains(got, "No component matching") {
		t.Errorf("expected miss message, got %q", got)
	}
	if !strings.Contains(got, "Button") {
		t.Errorf("expected known component listed, got %q", got)
	}
}

func TestQueryComponent_EmptyStore(t *testing.T) {
	c := newTestContext(t)
	got := c.QueryComponent("button")
	if !strings.Contains(got, "No components are currently indexed.") {
		t.Errorf("got %q", got)
	}
}
