package tools

import (
	"strings"
	"testing"

	"github.com/fluentdocs/mcp-server/internal/docstore"
)

func TestGetComponentExamples_RequiresName(t *testing.T) {
	c := newTestContext(t)
	got := c.GetComponentExamples("")
	if !strings.HasPrefix(got, "**Error:**") {
		t.Errorf("got %q, want error prefix", got)
	}
}

func TestGetComponentExamples_NotFound(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.GetComponentExamples("zzz-nonexistent")
	if !strings.Contains(got, "No component matching") {
		t.Errorf("got %q", got)
	}
}

func TestGetComponentExamples_NoExamples(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.GetComponentExamples("Button")
	if !strings.Contains(got, "has no code examples") {
		t.Errorf("got %q", got)
	}
}

func TestGetComponentExamples_RendersLabeledBlocks(t *testing.T) {
	entry := docstore.DocumentEntry{
		ID:           "components/buttons/Button",
		Title:        "Button",
		RelativePath: "02-components/buttons/Button.md",
		Content: "# Button\n\n## Usage\n\n```tsx\n" +
			"import { Button } from '@fluentui/react-components';\n\nexport const Example = () => <Button>Click me</Button>;\n" +
			"```\n",
		Module:   docstore.ModuleComponents,
		Category: "buttons",
		Metadata: docstore.Metadata{HasCodeExamples: true},
	}
	c := newTestContext(t, entry)
	got := c.GetComponentExamples("Button")
	if !strings.Contains(got, "Example 1: Usage") {
		t.Errorf("expected labeled example heading, got %q", got)
	}
	if !strings.Contains(got, "```tsx") {
		t.Errorf("expected tsx fenced block, got %q", got)
	}
}
