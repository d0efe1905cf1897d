package tools

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

func dashboardEntry() docstore.DocumentEntry {
	return docstore.DocumentEntry{
		ID:           "enterprise/dashboard-layout",
		Title:        "Dashboard Layout",
		RelativePath: "04-enterprise/dashboard-layout.md",
		Content:      "# Dashboard Layout\n\nKPI cards and summary widgets.\n",
		Module:       docstore.ModuleEnterprise,
	}
}

func TestGetEnterprise_OverviewWhenTopicEmpty(t *testing.T) {
	c := newTestContext(t, dashboardEntry())
	got := c.GetEnterprise("")
	if !strings.Contains(got, "Enterprise topics") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "dashboard") {
		t.Errorf("expected dashboard topic listed, got %q", got)
	}
}

func TestGetEnterprise_UnrecognizedTopic(t *testing.T) {
	c := newTestContext(t)
	got := c.GetEnterprise("not-a-real-topic")
	if !strings.Contains(got, "is not a recognized enterprise topic") {
		t.Errorf("got %q", got)
	}
}

func TestGetEnterprise_RecognizedButNotIndexed(t *testing.T) {
	c := newTestContext(t)
	got := c.GetEnterprise("dashboard")
	if !strings.Contains(got, "recognized but not currently indexed") {
		t.Errorf("got %q", got)
	}
}

func TestGetEnterprise_MatchesByFilenamePredicate(t *testing.T) {
	c := newTestContext(t, dashboardEntry())
	got := c.GetEnterprise("kpi") // alias of dashboard
	if !strings.Contains(got, "KPI cards and summary widgets.") {
		t.Errorf("got %q", got)
	}
}

func TestGetEnterprise_MultipleDocsGetTableOfContents(t *testing.T) {
	second := docstore.DocumentEntry{
		ID:           "enterprise/dashboard-widgets",
		Title:        "Dashboard Widgets",
		RelativePath: "04-enterprise/dashboard-widgets.md",
		Content:      "# Dashboard Widgets\n\nMore widgets.\n",
		Module:       docstore.ModuleEnterprise,
	}
	c := newTestContext(t, dashboardEntry(), second)
	got := c.GetEnterprise("dashboard")
	if !strings.Contains(got, "Table of Contents") {
		t.Errorf("expected table of contents for multi-doc topic, got %q", got)
	}
}
