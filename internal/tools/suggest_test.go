package tools

import (
	"strings"
	"testing"
)

func TestSuggestComponents_RequiresDescription(t *testing.T) {
	c := newTestContext(t)
	got := c.SuggestComponents("")
	if !strings.HasPrefix(got, "**Error:**") {
		t.Errorf("got %q, want error prefix", got)
	}
}

func TestSuggestComponents_NoMatches(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.SuggestComponents("zzz completely unrelated description xyz")
	if !strings.Contains(got, "No component suggestions for") {
		t.Errorf("got %q", got)
	}
}

func TestSuggestComponents_MatchesKeyword(t *testing.T) {
	c := newTestContext(t, buttonEntry(), checkboxEntry())
	got := c.SuggestComponents("I need a login form with a remember me checkbox")
	if !strings.Contains(got, "Checkbox") {
		t.Errorf("expected Checkbox suggested, got %q", got)
	}
}

func TestSuggestComponents_RendersFollowUpHints(t *testing.T) {
	c := newTestContext(t, buttonEntry())
	got := c.SuggestComponents("I need a submit button for my action")
	if !strings.Contains(got, "query_component") {
		t.Errorf("expected query_component hint, got %q", got)
	}
}
