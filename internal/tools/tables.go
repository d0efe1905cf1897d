package tools

import "strings"

// topicEntry is one row of a fixed topic enumeration: a canonical name,
// its recognized aliases, and a one-line description shown in overviews.
// Represented as a literal array of records (sum-typed static data) per
// the re-architecture note against duck-typed keyword maps.
type topicEntry struct {
	Name        string
	Aliases     []string
	Description string
}

// foundationTopics is the fixed set of six canonical foundation topics.
var foundationTopics = []topicEntry{
	{Name: "getting-started", Aliases: []string{"start", "intro", "setup"}, Description: "Installing and bootstrapping a Fluent UI application."},
	{Name: "fluent-provider", Aliases: []string{"provider"}, Description: "Wiring FluentProvider and selecting a theme at the app root."},
	{Name: "theming", Aliases: []string{"theme", "themes"}, Description: "Design tokens, light/dark themes, and custom theme creation."},
	{Name: "styling-griffel", Aliases: []string{"css", "griffel", "styling"}, Description: "Writing component styles with the Griffel CSS-in-JS engine."},
	{Name: "component-architecture", Aliases: []string{"architecture", "slots"}, Description: "Slot-based composition and the shape of Fluent UI components."},
	{Name: "accessibility", Aliases: []string{"a11y"}, Description: "Accessibility conventions shared across the component library."},
}

// resolveFoundationTopic merges the alias table and matches case-
// insensitively, returning the canonical topic name or "" if unrecognized.
func resolveFoundationTopic(raw string) string {
	q := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range foundationTopics {
		if q == t.Name {
			return t.Name
		}
		for _, a := range t.Aliases {
			if q == a {
				return t.Name
			}
		}
	}
	return ""
}

// patternCategories is the fixed closed set of pattern categories.
var patternCategories = []string{
	"composition", "data", "forms", "layout", "modals", "navigation", "state",
}

func isPatternCategory(raw string) bool {
	q := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range patternCategories {
		if c == q {
			return true
		}
	}
	return false
}

// enterpriseTopicEntry pairs a canonical enterprise topic with aliases
// and the filename predicate used to match documents to it.
type enterpriseTopicEntry struct {
	Name        string
	Aliases     []string
	Description string
	Predicate   func(filenameLower string) bool
}

var enterpriseTopics = []enterpriseTopicEntry{
	{
		Name: "app-shell", Aliases: []string{"shell", "layout-shell"},
		Description: "Application shell layout: navigation rail, header, content region.",
		Predicate:   func(f string) bool { return strings.Contains(f, "shell") || strings.Contains(f, "app-shell") },
	},
	{
		Name: "dashboard", Aliases: []string{"kpi", "dashboards"},
		Description: "Dashboard layouts, KPI cards, and summary widgets.",
		Predicate:   func(f string) bool { return strings.Contains(f, "dashboard") || strings.Contains(f, "kpi") },
	},
	{
		Name: "admin", Aliases: []string{"crud", "back-office"},
		Description: "Admin/back-office CRUD screens: list, detail, and edit views.",
		Predicate:   func(f string) bool { return strings.Contains(f, "admin") || strings.Contains(f, "crud") },
	},
	{
		Name: "data", Aliases: []string{"data-grid", "tables"},
		Description: "Large data set presentation: grids, tables, virtualization.",
		Predicate:   func(f string) bool { return strings.Contains(f, "data") },
	},
	{
		Name: "accessibility", Aliases: []string{"wcag", "a11y"},
		Description: "Enterprise-scale accessibility guidance and audits.",
		Predicate:   func(f string) bool { return strings.Contains(f, "accessib") || strings.Contains(f, "wcag") },
	},
}

func resolveEnterpriseTopic(raw string) string {
	q := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range enterpriseTopics {
		if q == t.Name {
			return t.Name
		}
		for _, a := range t.Aliases {
			if q == a {
				return t.Name
			}
		}
	}
	return ""
}

// keywordRow is one row of the suggest_components keyword map: keywords
// that, when present in the UI description, contribute components at a
// base relevance.
type keywordRow struct {
	Keywords   []string
	Components []string
	Relevance  int
}

var keywordMap = []keywordRow{
	{Keywords: []string{"login", "sign in", "signin"}, Components: []string{"Input", "Field", "Button", "Checkbox"}, Relevance: 60},
	{Keywords: []string{"form", "forms"}, Components: []string{"Field", "Input", "Checkbox", "RadioGroup", "Dropdown", "Button"}, Relevance: 55},
	{Keywords: []string{"remember me", "checkbox"}, Components: []string{"Checkbox"}, Relevance: 65},
	{Keywords: []string{"table", "grid", "rows", "columns", "sortable"}, Components: []string{"DataGrid", "Table"}, Relevance: 60},
	{Keywords: []string{"list"}, Components: []string{"List"}, Relevance: 45},
	{Keywords: []string{"dialog", "modal", "popup"}, Components: []string{"Dialog"}, Relevance: 60},
	{Keywords: []string{"notification", "toast", "alert"}, Components: []string{"Toast", "MessageBar"}, Relevance: 55},
	{Keywords: []string{"menu", "dropdown"}, Components: []string{"Menu", "Dropdown"}, Relevance: 50},
	{Keywords: []string{"tab", "tabs"}, Components: []string{"TabList"}, Relevance: 50},
	{Keywords: []string{"button", "action", "submit"}, Components: []string{"Button"}, Relevance: 50},
	{Keywords: []string{"navigation", "nav", "sidebar"}, Components: []string{"NavDrawer", "TabList"}, Relevance: 45},
	{Keywords: []string{"card", "cards"}, Components: []string{"Card"}, Relevance: 45},
	{Keywords: []string{"avatar", "profile"}, Components: []string{"Avatar"}, Relevance: 40},
	{Keywords: []string{"progress", "loading", "spinner"}, Components: []string{"Spinner", "ProgressBar"}, Relevance: 45},
	{Keywords: []string{"tooltip", "hint"}, Components: []string{"Tooltip"}, Relevance: 40},
	{Keywords: []string{"badge", "tag", "label"}, Components: []string{"Badge"}, Relevance: 35},
}

// categoryInferenceRow maps a broad keyword to a component category,
// contributing every component in that category at a flat relevance.
type categoryInferenceRow struct {
	Keywords []string
	Category string
}

var categoryInferenceMap = []categoryInferenceRow{
	{Keywords: []string{"login", "form", "input", "signup", "checkbox", "remember me"}, Category: "forms"},
	{Keywords: []string{"click", "action", "submit", "button"}, Category: "buttons"},
	{Keywords: []string{"nav", "navigation", "sidebar", "menu"}, Category: "navigation"},
	{Keywords: []string{"table", "grid", "list", "rows"}, Category: "data-display"},
	{Keywords: []string{"toast", "alert", "notification", "error", "warning"}, Category: "feedback"},
	{Keywords: []string{"dialog", "modal", "popup", "drawer"}, Category: "overlays"},
	{Keywords: []string{"layout", "shell", "grid layout", "stack"}, Category: "layout"},
}

const categoryInferenceRelevance = 15
