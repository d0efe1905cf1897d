package tools

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

func TestGetPropsReference_RequiresName(t *testing.T) {
	c := newTestContext(t)
	got := c.GetPropsReference("")
	if !strings.HasPrefix(got, "**Error:**") {
		t.Errorf("got %q, want error prefix", got)
	}
}

func TestGetPropsReference_NotFound(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.GetPropsReference("zzz-nonexistent")
	if !strings.Contains(got, "No component matching") {
		t.Errorf("got %q", got)
	}
}

func TestGetPropsReference_LabeledSection(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.GetPropsReference("Button")
	if !strings.Contains(got, "appearance") {
		t.Errorf("expected props table contents, got %q", got)
	}
}

func TestGetPropsReference_FallbackTable(t *testing.T) {
	entry := docstore.DocumentEntry{
		ID:           "components/data-display/DataGrid",
		Title:        "DataGrid",
		RelativePath: "02-components/data-display/DataGrid.md",
		Content:      "# DataGrid\n\nSome text.\n\n| Name | Description |\n| --- | --- |\n| columns | the grid columns |\n",
		Module:       docstore.ModuleComponents,
		Category:     "data-display",
	}
	c := newTestContext(t, entry)
	got := c.GetPropsReference("DataGrid")
	if !strings.Contains(got, "Extracted from inline tables") {
		t.Errorf("expected fallback-table notice, got %q", got)
	}
}

func TestGetPropsReference_NoPropsAvailable(t *testing.T) {
	entry := docstore.DocumentEntry{
		ID:           "foundation/theming",
		Title:        "Theming",
		RelativePath: "01-foundation/theming.md",
		Content:      "# Theming\n\nJust prose, no tables at all.\n",
		Module:       docstore.ModuleFoundation,
	}
	c := newTestContext(t, entry)
	got := c.GetPropsReference("Theming")
	if !strings.Contains(got, "has no props reference") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "not a component document") {
		t.Errorf("expected non-component note, got %q", got)
	}
}
