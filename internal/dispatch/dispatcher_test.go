package dispatch

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
	"github.com/fluentdocs/mcp-server/internal/index"
	"github.com/fluentdocs/mcp-server/internal/search"
	"github.com/fluentdocs/mcp-server/internal/tools"
)

func newTestDispatcher(entries ...docstore.DocumentEntry) *Dispatcher {
	store := docstore.NewStore()
	engine := search.NewEngine()
	for _, e := range entries {
		store.Add(e)
		engine.Index(e)
	}
	ctx := tools.NewServerContext(index.NewIndexSetForTest(store, engine), 0, 0)
	return New(ctx, nil)
}

func buttonEntry() docstore.DocumentEntry {
	return docstore.DocumentEntry{
		ID:           "components/buttons/Button",
		Title:        "Button",
		RelativePath: "02-components/buttons/Button.md",
		Content:      "# Button\n\nA clickable button.\n",
		Module:       docstore.ModuleComponents,
		Category:     "buttons",
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch("not_a_real_tool", nil)
	if !strings.HasPrefix(got, "**Error:** unknown tool") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "query_component") {
		t.Errorf("expected known-tool listing, got %q", got)
	}
}

func TestDispatch_RequiredArgumentMissing(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch("query_component", map[string]any{})
	if !strings.Contains(got, "componentName is required") {
		t.Errorf("got %q", got)
	}
}

func TestDispatch_RequiredArgumentWrongType(t *testing.T) {
	d := newTestDispatcher()
	got := d.Dispatch("query_component", map[string]any{"componentName": 42})
	if !strings.Contains(got, "must be a string") {
		t.Errorf("got %q", got)
	}
}

func TestDispatch_Success(t *testing.T) {
	d := newTestDispatcher(buttonEntry())
	got := d.Dispatch("query_component", map[string]any{"componentName": "button"})
	if !strings.Contains(got, "# Button") {
		t.Errorf("got %q", got)
	}
}

func TestDispatch_NoArgTool(t *testing.T) {
	d := newTestDispatcher(buttonEntry())
	got := d.Dispatch("list_all_docs", nil)
	if !strings.Contains(got, "All documentation") {
		t.Errorf("got %q", got)
	}
}

func TestToolNames_SortedAndComplete(t *testing.T) {
	d := newTestDispatcher()
	names := d.ToolNames()
	if len(names) != 12 {
		t.Fatalf("len(names) = %d, want 12", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("ToolNames() not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}
