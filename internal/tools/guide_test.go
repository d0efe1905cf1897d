package tools

import (
	"strings"
	"testing"
)

func TestGetImplementationGuide_RequiresGoal(t *testing.T) {
	c := newTestContext(t)
	got := c.GetImplementationGuide("")
	if !strings.HasPrefix(got, "**Error:**") {
		t.Errorf("got %q, want error prefix", got)
	}
}

func TestGetImplementationGuide_NoMatches(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.GetImplementationGuide("zzz completely unrelated goal xyz")
	if !strings.Contains(got, "No components or patterns matched") {
		t.Errorf("got %q", got)
	}
}

func TestGetImplementationGuide_BuildsPlanFromComponents(t *testing.T) {
	c := newTestContext(t, buttonEntry(), checkboxEntry())
	got := c.GetImplementationGuide("button")
	if !strings.Contains(got, "Implementation Guide: button") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Recommended Components") {
		t.Errorf("expected a components section, got %q", got)
	}
	if !strings.Contains(got, "FluentProvider") {
		t.Errorf("expected the FluentProvider bootstrap step, got %q", got)
	}
	if !strings.Contains(got, "Accessibility Checklist") {
		t.Errorf("expected accessibility checklist, got %q", got)
	}
}

func TestGetImplementationGuide_IncludesPatterns(t *testing.T) {
	c := newTestContext(t, multiStepFormEntry())
	got := c.GetImplementationGuide("multi step form")
	if !strings.Contains(got, "Relevant Patterns") {
		t.Errorf("expected a patterns section, got %q", got)
	}
}
